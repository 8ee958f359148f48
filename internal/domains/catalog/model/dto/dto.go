package dto

import (
	"beautyhub/internal/domains/catalog/model"
	"beautyhub/shared"
	gDto "beautyhub/shared/dto"
	gModel "beautyhub/shared/model"
	"beautyhub/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateStaffRequest struct {
	Name       string `json:"name"       validate:"required,max=100"`
	Specialty  string `json:"specialty"  validate:"omitempty,max=100"`
	Phone      string `json:"phone"      validate:"omitempty,max=30"`
	Email      string `json:"email"      validate:"omitempty,email"`
	Avatar     string `json:"avatar"     validate:"omitempty,url"`
	Commission *int   `json:"commission" validate:"omitempty,min=0,max=100"`
}

func (c *CreateStaffRequest) ToModel(tenantID, user string, defaultCommission int) model.Staff {
	commission := defaultCommission
	if c.Commission != nil {
		commission = *c.Commission
	}

	return model.Staff{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		Name:       c.Name,
		Specialty:  c.Specialty,
		Phone:      c.Phone,
		Email:      c.Email,
		Avatar:     c.Avatar,
		Commission: commission,
		Active:     true,
		Metadata:   gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateStaffRequest struct {
	Name       string `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Specialty  string `db:"specialty"  json:"specialty"  validate:"omitempty,max=100"`
	Phone      string `db:"phone"      json:"phone"      validate:"omitempty,max=30"`
	Email      string `db:"email"      json:"email"      validate:"omitempty,email"`
	Avatar     string `db:"avatar"     json:"avatar"     validate:"omitempty,url"`
	Commission *int   `db:"commission" json:"commission" validate:"omitempty,min=0,max=100"`
	Active     *bool  `db:"active"     json:"active"`
}

type StaffResponse struct {
	ID         string `json:"id"`
	TenantID   string `json:"tenant_id"`
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	Commission int    `json:"commission"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(staff model.Staff) {
	r.ID = staff.ID
	r.TenantID = staff.TenantID
	r.Name = staff.Name
	r.Specialty = staff.Specialty
	r.Phone = staff.Phone
	r.Email = staff.Email
	r.Avatar = staff.Avatar
	r.Commission = staff.Commission
	r.Active = staff.Active
	r.Metadata.FromModel(staff.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}

type CreateServiceRequest struct {
	Name        string          `json:"name"        validate:"required,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"    validate:"required,gt=0,max=1440"`
}

func (c *CreateServiceRequest) ToModel(tenantID, user string) model.Service {
	return model.Service{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Duration:    c.Duration,
		Active:      true,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateServiceRequest struct {
	Name        string           `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string           `db:"description" json:"description" validate:"omitempty,max=500"`
	Price       *decimal.Decimal `db:"price"       json:"price"`
	Duration    int              `db:"duration"    json:"duration"    validate:"omitempty,gt=0,max=1440"`
	Active      *bool            `db:"active"      json:"active"`
}

type ServiceResponse struct {
	ID          string  `json:"id"`
	TenantID    string  `json:"tenant_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(service model.Service) {
	r.ID = service.ID
	r.TenantID = service.TenantID
	r.Name = service.Name
	r.Description = service.Description
	r.Price = service.Price.InexactFloat64()
	r.Duration = service.Duration
	r.Active = service.Active
	r.Metadata.FromModel(service.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
