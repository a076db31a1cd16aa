package models

// ExportRecordRow is one record's flattened counts inside an export
// document. Counts is the full-length dense array in RequestType ordinal
// order.
type ExportRecordRow struct {
	RecordID string  `json:"pi"`
	Counts   []int64 `json:"counts"`
}

// ExportDocument is the flat per-day JSON document handed to the external
// record-indexing pipeline. One document exists per (viewer, day),
// overwritten on re-export.
type ExportDocument struct {
	ViewerName string            `json:"viewer-name"`
	Date       string            `json:"date"`
	Records    []ExportRecordRow `json:"records"`
}
