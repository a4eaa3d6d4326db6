package policy

// Role mirrors the agents.role column / JWT role claim.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleAdmin        Role = "admin"
	RoleSalesManager Role = "sales_manager"
	RoleSalesAgent   Role = "sales_agent"
	RoleViewer       Role = "viewer"
)

// Operation is a pipeline capability checked at the API boundary.
type Operation string

const (
	OpEnquiryCreate  Operation = "enquiry:create"
	OpEnquiryUpdate  Operation = "enquiry:update"
	OpEnquiryImport  Operation = "enquiry:import"
	OpEnquiryAssign  Operation = "enquiry:assign"
	OpEnquiryConvert Operation = "enquiry:convert"
	OpLeadCreate     Operation = "lead:create"
	OpLeadUpdate     Operation = "lead:update"
	OpLeadStage      Operation = "lead:stage"
	OpLeadAssign     Operation = "lead:assign"
	OpNoteAdd        Operation = "note:add"
	OpNoteDelete     Operation = "note:delete"
	OpClientUpdate   Operation = "client:update"
	OpBookingCreate  Operation = "booking:create"
	OpBookingUpdate  Operation = "booking:update"
	OpSaleCreate     Operation = "sale:create"
	OpAgentManage    Operation = "agent:manage"
)

// allow is the single capability table. Reallocation (pool moves, agent
// assignment), bulk import and conversion are manager-level; sales and
// agent administration are admin-level; everything read-only needs no entry.
var allow = map[Role]map[Operation]bool{
	RoleSalesAgent: {
		OpEnquiryCreate: true,
		OpEnquiryUpdate: true,
		OpLeadCreate:    true,
		OpLeadUpdate:    true,
		OpLeadStage:     true,
		OpNoteAdd:       true,
		OpNoteDelete:    true,
		OpClientUpdate:  true,
	},
	RoleSalesManager: {
		OpEnquiryCreate:  true,
		OpEnquiryUpdate:  true,
		OpEnquiryImport:  true,
		OpEnquiryAssign:  true,
		OpEnquiryConvert: true,
		OpLeadCreate:     true,
		OpLeadUpdate:     true,
		OpLeadStage:      true,
		OpLeadAssign:     true,
		OpNoteAdd:        true,
		OpNoteDelete:     true,
		OpClientUpdate:   true,
		OpBookingCreate:  true,
		OpBookingUpdate:  true,
	},
}

// Allowed reports whether role may perform op. Admin roles may do
// everything; viewers nothing mutating.
func Allowed(role Role, op Operation) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin:
		return true
	case RoleViewer:
		return false
	}
	return allow[role][op]
}

// CanModerate reports whether the role may act on records it does not own,
// e.g. deleting another agent's contact notes.
func CanModerate(role Role) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleSalesManager:
		return true
	}
	return false
}

// Valid reports whether the role string is one of the known roles.
func Valid(role Role) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleSalesManager, RoleSalesAgent, RoleViewer:
		return true
	}
	return false
}
