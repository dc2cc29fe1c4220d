package authz

import (
	"time"

	"github.com/google/uuid"

	"github.com/apertura/authcore/pkg/ipmatch"
)

// Role is the administrative tier of a user.
type Role string

const (
	// RoleSuperAdmin implies every permission regardless of the granular flags.
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleModerator  Role = "moderator"
)

// Permissions is the fixed set of named capabilities an admin role may
// carry, grouped by platform domain. For super admins the flags are
// ignored; see AdminRole.EffectivePermissions.
type Permissions struct {
	// User management
	ManageUsers bool `json:"manageUsers" bson:"manage_users"`
	BanUsers    bool `json:"banUsers" bson:"ban_users"`
	DeleteUsers bool `json:"deleteUsers" bson:"delete_users"`

	// Image management
	ManageImages   bool `json:"manageImages" bson:"manage_images"`
	ModerateImages bool `json:"moderateImages" bson:"moderate_images"`
	DeleteAnyImage bool `json:"deleteAnyImage" bson:"delete_any_image"`

	// Category management
	ManageCategories bool `json:"manageCategories" bson:"manage_categories"`

	// Admin management
	ManageAdmins bool `json:"manageAdmins" bson:"manage_admins"`

	// Dashboard and analytics
	ViewDashboard bool `json:"viewDashboard" bson:"view_dashboard"`
	ViewAnalytics bool `json:"viewAnalytics" bson:"view_analytics"`

	// Collections and favorites
	ManageCollections bool `json:"manageCollections" bson:"manage_collections"`
	ManageFavorites   bool `json:"manageFavorites" bson:"manage_favorites"`

	// Moderation
	ModerateComments bool `json:"moderateComments" bson:"moderate_comments"`

	// System and logs
	ViewSystemLogs bool `json:"viewSystemLogs" bson:"view_system_logs"`
	ManageSystem   bool `json:"manageSystem" bson:"manage_system"`
}

// allPermissions is what a super admin effectively holds.
var allPermissions = Permissions{
	ManageUsers:       true,
	BanUsers:          true,
	DeleteUsers:       true,
	ManageImages:      true,
	ModerateImages:    true,
	DeleteAnyImage:    true,
	ManageCategories:  true,
	ManageAdmins:      true,
	ViewDashboard:     true,
	ViewAnalytics:     true,
	ManageCollections: true,
	ManageFavorites:   true,
	ModerateComments:  true,
	ViewSystemLogs:    true,
	ManageSystem:      true,
}

// DefaultPermissions returns the baseline permission set granted with a
// role. Admins get everything except admin and system management;
// moderators are limited to content moderation and the dashboard. The
// grantor may adjust individual flags afterwards.
func DefaultPermissions(role Role) Permissions {
	switch role {
	case RoleSuperAdmin:
		return allPermissions
	case RoleAdmin:
		p := allPermissions
		p.ManageAdmins = false
		p.ManageSystem = false
		return p
	case RoleModerator:
		return Permissions{
			ModerateImages:   true,
			ModerateComments: true,
			ViewDashboard:    true,
		}
	default:
		return Permissions{}
	}
}

// AdminRole is the single source of truth for a user's administrative
// privilege. Absence of a record means the user is an ordinary user; at
// most one record exists per user.
type AdminRole struct {
	UserID      uuid.UUID   `json:"userId"`
	Role        Role        `json:"role"`
	Permissions Permissions `json:"permissions"`

	// GrantedBy records the granting admin for the audit trail only.
	GrantedBy *uuid.UUID `json:"grantedBy,omitempty"`

	// ExpiresAt, when set, invalidates the role once passed.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	// Active is an immediate kill-switch that overrides everything else.
	Active bool `json:"active"`

	// AllowedIPs restricts where the role may be exercised from; entries
	// are exact IPs or CIDR ranges. Empty means unrestricted.
	AllowedIPs []string `json:"allowedIPs,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validation reasons, surfaced for logging and UI hints. These are not
// errors: an invalid role simply means "not admin".
const (
	ReasonNoRole    = "No admin role found"
	ReasonInactive  = "Admin role is inactive"
	ReasonExpired   = "Admin role has expired"
	ReasonIPBlocked = "Access denied from this IP address"
)

// Validation is the outcome of checking a role's usability.
type Validation struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// IsSuperAdmin reports whether the role tier is super_admin. Derived from
// the role name only, never from permission flags.
func (r AdminRole) IsSuperAdmin() bool {
	return r.Role == RoleSuperAdmin
}

// IsExpired reports whether the role's expiry, if any, has passed.
func (r AdminRole) IsExpired(now time.Time) bool {
	return r.ExpiresAt != nil && !now.Before(*r.ExpiresAt)
}

// EffectivePermissions returns the permissions the role actually grants:
// the stored flags, or every permission for super admins.
func (r AdminRole) EffectivePermissions() Permissions {
	if r.IsSuperAdmin() {
		return allPermissions
	}
	return r.Permissions
}

// Validate checks the role's usability in order: kill-switch, expiry, then
// IP allowlist. The first failing check wins and later checks do not run.
// An empty clientIP skips the allowlist check entirely.
func (r AdminRole) Validate(now time.Time, clientIP string) Validation {
	if !r.Active {
		return Validation{Reason: ReasonInactive}
	}
	if r.IsExpired(now) {
		return Validation{Reason: ReasonExpired}
	}
	if clientIP != "" && len(r.AllowedIPs) > 0 && !ipmatch.Allowed(clientIP, r.AllowedIPs) {
		return Validation{Reason: ReasonIPBlocked}
	}
	return Validation{Valid: true}
}
