package dto

import (
	"mime/multipart"

	"beautyhub/internal/domains/tenant/model"
	"beautyhub/shared"
	gDto "beautyhub/shared/dto"
	gModel "beautyhub/shared/model"
	"beautyhub/shared/timezone"
)

type ContactRequest struct {
	Phone    string `json:"phone"    validate:"omitempty,max=30"`
	WhatsApp string `json:"whatsapp" validate:"omitempty,max=30"`
	Email    string `json:"email"    validate:"omitempty,email"`
}

type ThemeRequest struct {
	Primary   string `json:"primary"   validate:"omitempty,hexcolor"`
	Secondary string `json:"secondary" validate:"omitempty,hexcolor"`
	Accent    string `json:"accent"    validate:"omitempty,hexcolor"`
}

type CreateTenantRequest struct {
	Name               string               `json:"name"                 validate:"required,max=100"`
	BusinessType       string               `json:"business_type"        validate:"omitempty,max=50"`
	Description        string               `json:"description"          validate:"omitempty,max=500"`
	Address            string               `json:"address"              validate:"omitempty,max=200"`
	StaffLabel         string               `json:"staff_label"          validate:"omitempty,max=30"`
	StaffLabelSingular string               `json:"staff_label_singular" validate:"omitempty,max=30"`
	Contact            ContactRequest       `json:"contact"`
	Theme              ThemeRequest         `json:"theme"`
	Schedule           model.WeeklySchedule `json:"schedule"`
}

func (c *CreateTenantRequest) ToModel(id, slug, owner string) model.Tenant {
	schedule := c.Schedule
	if schedule == nil {
		schedule = model.DefaultSchedule()
	}

	staffLabel := c.StaffLabel
	if staffLabel == "" {
		staffLabel = model.DefaultStaffLabel
	}

	staffLabelSingular := c.StaffLabelSingular
	if staffLabelSingular == "" {
		staffLabelSingular = model.DefaultStaffLabelSingular
	}

	accent := c.Theme.Accent
	if accent == "" {
		accent = c.Theme.Primary
	}

	return model.Tenant{
		ID:                 id,
		Name:               c.Name,
		Slug:               slug,
		BusinessType:       c.BusinessType,
		Description:        c.Description,
		Address:            c.Address,
		Phone:              c.Contact.Phone,
		WhatsApp:           c.Contact.WhatsApp,
		Email:              c.Contact.Email,
		StaffLabel:         staffLabel,
		StaffLabelSingular: staffLabelSingular,
		ThemePrimary:       c.Theme.Primary,
		ThemeSecondary:     c.Theme.Secondary,
		ThemeAccent:        accent,
		Subscription:       model.SubscriptionFree,
		Schedule:           schedule,
		OwnerID:            owner,
		Active:             true,
		Metadata:           gModel.NewMetadata(timezone.Now(), owner),
	}
}

// UpdateTenantRequest is a shallow merge: only non-empty fields are written and
// a schedule, when present, replaces the stored one entirely.
type UpdateTenantRequest struct {
	Name               string               `db:"name"                 json:"name"                 validate:"omitempty,max=100"`
	BusinessType       string               `db:"business_type"        json:"business_type"        validate:"omitempty,max=50"`
	Description        string               `db:"description"          json:"description"          validate:"omitempty,max=500"`
	Address            string               `db:"address"              json:"address"              validate:"omitempty,max=200"`
	Phone              string               `db:"phone"                json:"phone"                validate:"omitempty,max=30"`
	WhatsApp           string               `db:"whatsapp"             json:"whatsapp"             validate:"omitempty,max=30"`
	Email              string               `db:"email"                json:"email"                validate:"omitempty,email"`
	StaffLabel         string               `db:"staff_label"          json:"staff_label"          validate:"omitempty,max=30"`
	StaffLabelSingular string               `db:"staff_label_singular" json:"staff_label_singular" validate:"omitempty,max=30"`
	ThemePrimary       string               `db:"theme_primary"        json:"theme_primary"        validate:"omitempty,hexcolor"`
	ThemeSecondary     string               `db:"theme_secondary"      json:"theme_secondary"      validate:"omitempty,hexcolor"`
	ThemeAccent        string               `db:"theme_accent"         json:"theme_accent"         validate:"omitempty,hexcolor"`
	Schedule           model.WeeklySchedule `db:"schedule"             json:"schedule"`
}

func (u UpdateTenantRequest) ToUpdate(user string) map[string]any {
	return shared.TransformFields(u, user)
}

type UploadLogoRequest struct {
	Logo     *multipart.FileHeader `json:"logo" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	LogoFile multipart.File        `json:"-"`
}

type ContactResponse struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

type ThemeResponse struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

type TenantResponse struct {
	ID                 string               `json:"id"`
	Name               string               `json:"name"`
	Slug               string               `json:"slug"`
	BusinessType       string               `json:"business_type"`
	Description        string               `json:"description"`
	Logo               string               `json:"logo"`
	Address            string               `json:"address"`
	StaffLabel         string               `json:"staff_label"`
	StaffLabelSingular string               `json:"staff_label_singular"`
	Contact            ContactResponse      `json:"contact"`
	Theme              ThemeResponse        `json:"theme"`
	Subscription       string               `json:"subscription"`
	Schedule           model.WeeklySchedule `json:"schedule"`
	OwnerID            string               `json:"owner_id"`
	Active             bool                 `json:"active"`
	gDto.Metadata
}

func (r *TenantResponse) FromModel(tenant model.Tenant) {
	r.ID = tenant.ID
	r.Name = tenant.Name
	r.Slug = tenant.Slug
	r.BusinessType = tenant.BusinessType
	r.Description = tenant.Description
	r.Logo = tenant.Logo
	r.Address = tenant.Address
	r.StaffLabel = tenant.Label(true)
	r.StaffLabelSingular = tenant.Label(false)
	r.Contact = ContactResponse{Phone: tenant.Phone, WhatsApp: tenant.WhatsApp, Email: tenant.Email}
	r.Theme = ThemeResponse{Primary: tenant.ThemePrimary, Secondary: tenant.ThemeSecondary, Accent: tenant.ThemeAccent}
	r.Subscription = tenant.Subscription
	r.Schedule = tenant.Schedule
	r.OwnerID = tenant.OwnerID
	r.Active = tenant.Active
	r.Metadata.FromModel(tenant.Metadata)
}

type GetTenantsResponse struct {
	Tenants   []TenantResponse `json:"tenants"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetTenantsResponse) FromModels(models []model.Tenant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tenants = make([]TenantResponse, len(models))
	for i, mod := range models {
		r.Tenants[i].FromModel(mod)
	}
}

type OpenStatusResponse struct {
	Slug   string `json:"slug"`
	Open   bool   `json:"open"`
	At     string `json:"at"`
	Closes string `json:"closes,omitempty"`
}
