package model

// ServiceProfile is a subscription tier. Name is the natural key referenced
// by customers and radusergroup rows. DataLimit is GB, nil means unlimited.
type ServiceProfile struct {
	ID            int64   `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	DownloadSpeed int     `db:"download_speed" json:"download_speed"` // Mbps
	UploadSpeed   int     `db:"upload_speed" json:"upload_speed"`     // Mbps
	DataLimit     *int64  `db:"data_limit" json:"data_limit"`
	Price         float64 `db:"price" json:"price"`
	Description   string  `db:"description" json:"description"`
}
