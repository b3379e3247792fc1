package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrUpstream = "upstream"
	AttrRole     = "role"
	AttrKind     = "kind"
	AttrDataset  = "dataset"
)

// Auth failure kinds.
const (
	AuthUnauthenticated = "unauthenticated"
	AuthForbidden       = "forbidden"
	AuthGuard           = "guard"
)
