package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin        = "admin"
	RoleOperations   = "operations"
	RoleSalesManager = "sales_manager"
	RoleSalesRep     = "sales_rep"
)

// Permisos conocidos por el core.
const (
	PermSalesCreate     = "sales:create"
	PermSalesApprove    = "sales:approve"
	PermSalesEdit       = "sales:edit"
	PermSalesDelete     = "sales:delete"
	PermSalesViewAll    = "sales:view_all"
	PermLeaderboardView = "leaderboard:view"
)

// rolePermissions es la tabla estática rol → permisos. El core la consume para
// autorizar; la administración de roles vive fuera de este servicio.
var rolePermissions = map[string][]string{
	RoleAdmin: {
		PermSalesCreate, PermSalesApprove, PermSalesEdit, PermSalesDelete,
		PermSalesViewAll, PermLeaderboardView,
	},
	RoleOperations: {
		PermSalesApprove, PermSalesViewAll, PermLeaderboardView,
	},
	RoleSalesManager: {
		PermSalesCreate, PermSalesApprove, PermSalesViewAll, PermLeaderboardView,
	},
	RoleSalesRep: {
		PermSalesCreate, PermLeaderboardView,
	},
}

// ValidRole indica si r es uno de los roles conocidos.
func ValidRole(r string) bool {
	_, ok := rolePermissions[r]
	return ok
}

// RoleHasPermission consulta la tabla estática rol → permisos.
func RoleHasPermission(role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// User representa un usuario del portal interno.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, operations, sales_manager, sales_rep
	ManagerID    string // opcional: manager al que reporta el representante
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
