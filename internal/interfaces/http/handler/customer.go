package handler

import (
	crmapp "github.com/clubhub/backend/internal/application/crm"
	"github.com/clubhub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// CustomerHandler handles customer-related API endpoints. All routes are
// scoped by the :userId path segment, which identifies the tenant.
type CustomerHandler struct {
	BaseHandler
	customerService     *crmapp.CustomerService
	provisioningService *crmapp.ProvisioningService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *crmapp.CustomerService, provisioningService *crmapp.ProvisioningService) *CustomerHandler {
	return &CustomerHandler{
		customerService:     customerService,
		provisioningService: provisioningService,
	}
}

// RegisterRoutes registers customer routes
func (h *CustomerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users/:userId")
	{
		users.GET("/customers", h.List)
		users.POST("/customers", h.Create)
		users.GET("/customers/:customerId", h.Get)
		users.PATCH("/customers/:customerId", h.Update)
		users.DELETE("/customers/:customerId", h.Delete)
		users.POST("/accounts/:accountId/customers", h.AddToAccount)
	}
}

// List returns the tenant's customer collection
func (h *CustomerHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	response, err := h.customerService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, response)
}

// Get returns a single customer with the accounts it is subscribed to
func (h *CustomerHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	customerID, err := getUUIDParam(c, "customerId")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	response, err := h.customerService.Get(c.Request.Context(), tenantID, customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, response)
}

// AddToAccount provisions a new customer onto an existing account
func (h *CustomerHandler) AddToAccount(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	var req crmapp.AddCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	detail, err := h.provisioningService.AddCustomer(c.Request.Context(), tenantID, accountID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"account": detail})
}

// Create creates a customer without an account association
func (h *CustomerHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req crmapp.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.provisioningService.AddIndirectCustomer(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"customer": customer})
}

// Update updates a customer's details
func (h *CustomerHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	customerID, err := getUUIDParam(c, "customerId")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	var req crmapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if _, err := h.customerService.Update(c.Request.Context(), tenantID, customerID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dto.MessageResponse{Message: "Customer updated"})
}

// Delete removes a customer from the tenant
func (h *CustomerHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	customerID, err := getUUIDParam(c, "customerId")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), tenantID, customerID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dto.MessageResponse{Message: "Customer deleted"})
}
