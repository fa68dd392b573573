package domain

type CatalogStatus int

const (
	CatalogIdle CatalogStatus = iota
	CatalogLoading
	CatalogLoaded
	CatalogFailed
)

func (s CatalogStatus) String() string {
	switch s {
	case CatalogIdle:
		return "idle"
	case CatalogLoading:
		return "loading"
	case CatalogLoaded:
		return "loaded"
	case CatalogFailed:
		return "failed"
	}
	return "unknown"
}

// CatalogState is a snapshot of the catalog store. Items keep the
// upstream response order verbatim and are non-empty only when the
// status is CatalogLoaded. ErrorMessage is set only when the status
// is CatalogFailed.
type CatalogState struct {
	Status       CatalogStatus
	Items        []Product
	ErrorMessage string
}
