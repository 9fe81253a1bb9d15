package core

// Entity is an opaque handle into the ECS world
// Zero is never issued and means "no entity"
type Entity uint64
