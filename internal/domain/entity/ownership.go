package entity

// Owned is implemented by every resource that carries an owning user.
type Owned interface {
	OwnerID() int64
}

// CanMutate decides whether the actor may update or delete a resource owned by ownerID.
// Unknown roles never pass.
func CanMutate(ownerID, actorID int64, role Role) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleUser:
		return ownerID == actorID
	default:
		return false
	}
}
