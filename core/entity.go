package core

// Entity is a unique identifier for an entity
// Zero is reserved as the null entity
type Entity uint64
