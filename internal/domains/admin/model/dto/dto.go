package dto

import (
	"time"

	"pgms/internal/domains/admin/model"
	"pgms/internal/tenancy"
	"pgms/shared"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/timezone"
)

type AdminResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Role          string  `json:"role"`
	HostelName    *string `json:"hostel_name"`
	HostelAddress *string `json:"hostel_address"`
	HostelType    *string `json:"hostel_type"`
	LocationLink  *string `json:"location_link"`
	PhotoURL      *string `json:"photo_url"`
	Frozen        bool    `json:"is_frozen"`
	LastLogin     string  `json:"last_login,omitempty"`

	HostelPhotos          []string `json:"hostel_photos"`
	SubscriptionPlan      *string  `json:"subscription_plan"`
	SubscriptionStartDate string   `json:"subscription_start_date,omitempty"`
	SubscriptionEndDate   string   `json:"subscription_end_date,omitempty"`
	gDto.Timestamps
}

func (r *AdminResponse) FromModel(model model.Admin) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.HostelName = model.HostelName
	r.HostelAddress = model.HostelAddress
	r.HostelType = model.HostelType
	r.LocationLink = model.LocationLink
	r.PhotoURL = model.PhotoURL
	r.Frozen = model.Frozen
	r.Timestamps.FromModel(model.Timestamps)

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateFormat)
	}

	r.HostelPhotos = model.HostelPhotos.Items()
	r.SubscriptionPlan = model.SubscriptionPlan

	if model.SubscriptionStartDate != nil {
		r.SubscriptionStartDate = timezone.Format(*model.SubscriptionStartDate, constant.DateFormat)
	}

	if model.SubscriptionEndDate != nil {
		r.SubscriptionEndDate = timezone.Format(*model.SubscriptionEndDate, constant.DateFormat)
	}
}

type GetAdminsResponse struct {
	Admins    []AdminResponse `json:"admins"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetAdminsResponse) FromModels(models []model.Admin, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Admins = make([]AdminResponse, len(models))
	for i, mod := range models {
		r.Admins[i].FromModel(mod)
	}
}

// UpdateProfileRequest is a partial update; nil fields keep their stored value.
type UpdateProfileRequest struct {
	Name          *string `json:"name"           validate:"omitempty,min=2,max=100"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Phone         *string `json:"phone"          validate:"omitempty,phone"`
	HostelName    *string `json:"hostel_name"    validate:"omitempty,max=255"`
	HostelAddress *string `json:"hostel_address" validate:"omitempty,max=1000"`
	HostelType    *string `json:"hostel_type"    validate:"omitempty,oneof=NORMAL CO_LIVING BOYS GIRLS OTHER"`
	LocationLink  *string `json:"location_link"  validate:"omitempty,url,max=500"`
}

func (u *UpdateProfileRequest) Apply(admin *model.Admin) {
	if u.Name != nil {
		admin.Name = *u.Name
	}

	if u.Email != nil {
		admin.Email = *u.Email
	}

	if u.Phone != nil {
		admin.Phone = *u.Phone
	}

	if u.HostelName != nil {
		admin.HostelName = u.HostelName
	}

	if u.HostelAddress != nil {
		admin.HostelAddress = u.HostelAddress
	}

	if u.HostelType != nil {
		admin.HostelType = u.HostelType
	}

	if u.LocationLink != nil {
		admin.LocationLink = u.LocationLink
	}
}

type FreezeRequest struct {
	Frozen *bool `json:"frozen" validate:"required"`
}

type PhotoResponse struct {
	PhotoURL string `json:"photo_url"`
}

type HostelPhotoResponse struct {
	PhotoURL     string   `json:"photo_url"`
	HostelPhotos []string `json:"hostel_photos"`
}

// Subscription is the plan window written when a plan is activated.
type Subscription struct {
	Plan  string
	Start time.Time
	End   time.Time
}

// TableStatus reports which of the tenant's tables exist.
type TableStatus struct {
	AllTablesPresent bool     `json:"all_tables_present"`
	MissingTables    []string `json:"missing_tables"`
}

func (s *TableStatus) FromKinds(missing []tenancy.Kind) {
	s.MissingTables = KindNames(missing)
	s.AllTablesPresent = len(missing) == 0
}

type RepairTablesResponse struct {
	AdminID       int64    `json:"admin_id"`
	Repaired      bool     `json:"repaired"`
	MissingBefore []string `json:"missing_before"`
	MissingAfter  []string `json:"missing_after"`
	Error         string   `json:"error,omitempty"`
}

// AdminEvent is published when an account is registered or deleted.
type AdminEvent struct {
	AdminID       int64   `json:"admin_id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	HostelName    *string `json:"hostel_name,omitempty"`
	TablesDropped bool    `json:"tables_dropped,omitempty"`
}

func (e *AdminEvent) FromModel(model model.Admin) {
	e.AdminID = model.ID
	e.Name = model.Name
	e.Email = model.Email
	e.HostelName = model.HostelName
}

func KindNames(kinds []tenancy.Kind) []string {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}

	return names
}
