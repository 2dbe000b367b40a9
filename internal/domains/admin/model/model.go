package model

import (
	"time"

	"pgms/internal/tenancy"
	"pgms/shared/constant"
	gModel "pgms/shared/model"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldFrozen    = "is_frozen"
	FieldLastLogin = "last_login"
	FieldPassword  = "password"
	FieldRole      = "role"

	FieldHostelType            = "hostel_type"
	FieldSubscriptionPlan      = "subscription_plan"
	FieldSubscriptionStartDate = "subscription_start_date"
	FieldSubscriptionEndDate   = "subscription_end_date"
)

// MaxHostelPhotos bounds the gallery shown on the public hostel listing.
const MaxHostelPhotos = 10

const (
	HostelTypeNormal   = "NORMAL"
	HostelTypeCoLiving = "CO_LIVING"
	HostelTypeBoys     = "BOYS"
	HostelTypeGirls    = "GIRLS"
	HostelTypeOther    = "OTHER"
)

// Admin is a hostel operator account. Its id is also the tenant id that names
// the operator's private tables.
type Admin struct {
	ID            int64      `db:"id"`
	Name          string     `db:"name"`
	Email         string     `db:"email"`
	Phone         string     `db:"phone"`
	Password      string     `db:"password"`
	Role          string     `db:"role"`
	HostelName    *string    `db:"hostel_name"`
	HostelAddress *string    `db:"hostel_address"`
	HostelType    *string    `db:"hostel_type"`
	LocationLink  *string    `db:"location_link"`
	PhotoURL      *string    `db:"photo_url"`
	Frozen        bool       `db:"is_frozen"`
	LastLogin     *time.Time `db:"last_login"`

	HostelPhotos          gModel.StringList `db:"hostel_photos"`
	SubscriptionPlan      *string           `db:"subscription_plan"`
	SubscriptionStartDate *time.Time        `db:"subscription_start_date"`
	SubscriptionEndDate   *time.Time        `db:"subscription_end_date"`
	gModel.Timestamps
}

func (a *Admin) PrimaryKey() int64 {
	return a.ID
}

func (a *Admin) SetPrimaryKey(id int64) {
	a.ID = id
}

func (a *Admin) BeforeInsert(now time.Time) {
	if a.Role == "" {
		a.Role = constant.RoleAdmin
	}

	a.TouchCreated(now)
}

func (a *Admin) BeforeUpdate(now time.Time) {
	a.TouchUpdated(now)
}

// SubscriptionActive reports whether a plan is running at now.
func (a *Admin) SubscriptionActive(now time.Time) bool {
	return a.SubscriptionPlan != nil && a.SubscriptionEndDate != nil && now.Before(*a.SubscriptionEndDate)
}

func (a *Admin) TenantID() tenancy.TenantID {
	return tenancy.TenantID(a.ID)
}
