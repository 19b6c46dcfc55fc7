package model

// Entity names a persisted resource, used as the key of per-entity policies.
type Entity string

const (
	EntityCategory Entity = "category"
	EntityPost     Entity = "post"
)
