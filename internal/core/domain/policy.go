package domain

// Operation names a guarded action on the API.
type Operation string

const (
	OpListUsers   Operation = "users:list"
	OpReadUser    Operation = "users:read"
	OpUpdateUser  Operation = "users:update"
	OpDeleteUser  Operation = "users:delete"
	OpReadProfile Operation = "profile:read"
)

// allowedRoles defines the authorization policy: which roles may perform
// each operation. Management operations are seller-only.
var allowedRoles = map[Operation][]string{
	OpListUsers:   {RoleSeller},
	OpUpdateUser:  {RoleSeller},
	OpDeleteUser:  {RoleSeller},
	OpReadUser:    {RoleBuyer, RoleSeller},
	OpReadProfile: {RoleBuyer, RoleSeller},
}

// OperationAllowed reports whether role may perform op. Unknown operations
// and unknown roles deny (fail closed).
func OperationAllowed(role string, op Operation) bool {
	for _, allowed := range allowedRoles[op] {
		if allowed == role {
			return true
		}
	}
	return false
}
