// Package ordergateway provides the GORM implementation of the order
// gateway, mapping supply orders, products and the client FTP dictionary
// to their PostgreSQL tables.
package ordergateway

import (
	"time"

	"supplyorders/internal/core/domain/model/order"
	"supplyorders/internal/core/domain/model/product"
)

// OrderDTO mirrors the orders table. Column names are part of the shared
// schema contract with the upstream registration system.
type OrderDTO struct {
	ID               int64      `gorm:"column:id_order;primaryKey"`
	Symbol           string     `gorm:"column:order_symbol;size:20"`
	ClientCompanyID  int        `gorm:"column:client_company_id"`
	Status           int        `gorm:"column:status;index"`
	FtpStatus        int        `gorm:"column:ftp_status"`
	OrderFile        string     `gorm:"column:order_file;size:20"`
	ResponseFile     string     `gorm:"column:response_file;size:20"`
	FtpFile          string     `gorm:"column:ftp_file;size:20"`
	Comment          string     `gorm:"column:comment;size:200"`
	CreationDate     *time.Time `gorm:"column:creation_date"`
	ModificationDate *time.Time `gorm:"column:modification_date"`
}

// TableName overrides GORM's naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductDTO mirrors the products table. Positions reference their order
// through the order_fk back-reference; they are never cascaded.
type ProductDTO struct {
	ID                 int64  `gorm:"column:id_product;primaryKey"`
	Name               string `gorm:"column:name;size:100"`
	CentralIdentNumber string `gorm:"column:central_ident_number;size:6"`
	CompanyID          int    `gorm:"column:company_id"`
	Quantity           int    `gorm:"column:quantity"`
	ProcessedQuantity  int    `gorm:"column:processed_quantity"`
	OrderRef           int64  `gorm:"column:order_fk;index"`
}

// TableName overrides GORM's naming convention.
func (ProductDTO) TableName() string {
	return "products"
}

// ClientFtpInfoDTO mirrors the client_ftp_info dictionary that maps a
// client company to its FTP target directory.
type ClientFtpInfoDTO struct {
	ID              int    `gorm:"column:id_client_ftp_info;primaryKey"`
	ClientCompanyID int    `gorm:"column:client_company_id;index"`
	FtpDirectory    string `gorm:"column:ftp_directory;size:100"`
}

// TableName overrides GORM's naming convention.
func (ClientFtpInfoDTO) TableName() string {
	return "client_ftp_info"
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	creationDate := time.Time{}
	if dto.CreationDate != nil {
		creationDate = *dto.CreationDate
	}
	modificationDate := time.Time{}
	if dto.ModificationDate != nil {
		modificationDate = *dto.ModificationDate
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Symbol,
		dto.ClientCompanyID,
		order.Status(dto.Status),
		order.FtpStatus(dto.FtpStatus),
		dto.OrderFile,
		dto.ResponseFile,
		dto.FtpFile,
		dto.Comment,
		creationDate,
		modificationDate,
	)
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(
		dto.ID,
		dto.Name,
		dto.CentralIdentNumber,
		dto.CompanyID,
		dto.Quantity,
		dto.ProcessedQuantity,
	)
}
