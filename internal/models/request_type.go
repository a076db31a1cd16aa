package models

import "fmt"

// RequestType identifies a countable kind of viewer interaction.
//
// The ordinal value of each type is a serialization contract: it is the
// position of that type's count inside the dense count arrays written to the
// daily store and the export documents. New types must be appended at the
// end, never inserted, or historical data becomes unreadable.
type RequestType int

const (
	RequestRecordView RequestType = iota
	RequestFileDownload
	RequestMediaResource

	// RequestTypeCount is the number of request types and the length of a
	// full count array.
	RequestTypeCount = int(iota)
)

var requestTypeNames = [RequestTypeCount]string{
	"RECORD_VIEW",
	"FILE_DOWNLOAD",
	"MEDIA_RESOURCE",
}

// AllRequestTypes returns every request type in ordinal order.
func AllRequestTypes() []RequestType {
	types := make([]RequestType, RequestTypeCount)
	for i := range types {
		types[i] = RequestType(i)
	}
	return types
}

// Valid reports whether t is one of the declared request types.
func (t RequestType) Valid() bool {
	return t >= 0 && int(t) < RequestTypeCount
}

func (t RequestType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("RequestType(%d)", int(t))
	}
	return requestTypeNames[t]
}

// NewRequestTypeFromString parses the wire name of a request type.
func NewRequestTypeFromString(name string) (RequestType, error) {
	for i, n := range requestTypeNames {
		if n == name {
			return RequestType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown request type: %q", name)
}
