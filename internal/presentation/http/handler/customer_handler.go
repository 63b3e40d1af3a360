package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hallmarkbd/hallmark-api/internal/application/service"
	"github.com/hallmarkbd/hallmark-api/internal/presentation/http/dto/response"
	"github.com/hallmarkbd/hallmark-api/pkg/upload"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
	saver           *upload.Saver
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, saver *upload.Saver) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, saver: saver}
}

// List handles GET /users
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Create handles POST /users/create (multipart/form-data). The form's
// customerID field is accepted but ignored; numbering is server-side.
func (h *CustomerHandler) Create(c *gin.Context) {
	imagePath, ok := h.saveImage(c)
	if !ok {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:      c.PostForm("name"),
		Contact:   c.PostForm("contact"),
		Companies: c.PostFormArray("company"),
		Address:   c.PostForm("address"),
		ImagePath: imagePath,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// Update handles PUT /users/update/:id (multipart/form-data). Absent
// form fields leave the stored values untouched; a present company list
// replaces the stored one wholesale.
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	imagePath, ok := h.saveImage(c)
	if !ok {
		return
	}

	input := &service.UpdateCustomerInput{ID: id, ImagePath: imagePath}
	if name, exists := c.GetPostForm("name"); exists {
		input.Name = &name
	}
	if contact, exists := c.GetPostForm("contact"); exists {
		input.Contact = &contact
	}
	if address, exists := c.GetPostForm("address"); exists {
		input.Address = &address
	}
	if companies := c.PostFormArray("company"); len(companies) > 0 {
		input.Companies = companies
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete handles DELETE /users/delete/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if _, err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Customer deleted successfully")
}

// LastCustomerID handles GET /users/lastCustomerID
func (h *CustomerHandler) LastCustomerID(c *gin.Context) {
	last, err := h.customerService.LastCustomerNo(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lastCustomerID": last})
}

// saveImage stores the optional image form file and returns its public
// path. A false second return means the response was already written.
func (h *CustomerHandler) saveImage(c *gin.Context) (*string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		// Image is optional on both create and update.
		return nil, true
	}
	path, err := h.saver.Save(file)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return &path, true
}
