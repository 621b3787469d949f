package cmd

import (
	"fmt"
	"log"

	"github.com/jmehdipour/radius-admin/internal/config"
	"github.com/jmehdipour/radius-admin/internal/db"
	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the service-profile catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		sqlDB, err := db.NewMySQL(cfg.MySQL.DSN, db.Opts{
			MaxOpenConns:    cfg.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.MySQL.MaxIdleConns,
			ConnMaxLifetime: cfg.MySQL.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.MySQL.ConnMaxIdleTime,
			PingTimeout:     cfg.MySQL.PingTimeout,
		})
		if err != nil {
			return fmt.Errorf("mysql connect: %w", err)
		}
		defer sqlDB.Close()

		log.Println(">> Seeding service profiles...")

		if err := seedServiceProfiles(sqlDB); err != nil {
			return err
		}

		log.Println(">> Seed completed")
		return nil
	},
}

// seedServiceProfiles inserts the standard subscription tiers (idempotent).
// Customers and group assignments reference profiles by name, so the names
// here are the natural keys the rest of the system depends on.
func seedServiceProfiles(dbx *sqlx.DB) error {
	profiles := []model.ServiceProfile{
		{
			Name:          "Basic",
			DownloadSpeed: 10,
			UploadSpeed:   2,
			DataLimit:     int64ptr(100),
			Price:         19.99,
			Description:   "Entry plan for light browsing and email",
		},
		{
			Name:          "Standard",
			DownloadSpeed: 50,
			UploadSpeed:   10,
			DataLimit:     int64ptr(500),
			Price:         39.99,
			Description:   "Family plan with room for streaming",
		},
		{
			Name:          "Premium",
			DownloadSpeed: 100,
			UploadSpeed:   20,
			DataLimit:     nil,
			Price:         59.99,
			Description:   "Unlimited data, suited for heavy streaming",
		},
		{
			Name:          "Enterprise",
			DownloadSpeed: 500,
			UploadSpeed:   100,
			DataLimit:     nil,
			Price:         149.99,
			Description:   "Business tier with symmetric-ish bandwidth",
		},
	}

	// idempotent upsert based on name (UNIQUE)
	const q = `
INSERT INTO service_profiles
    (name, download_speed, upload_speed, data_limit, price, description)
VALUES
    (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
    download_speed = VALUES(download_speed),
    upload_speed   = VALUES(upload_speed),
    data_limit     = VALUES(data_limit),
    price          = VALUES(price),
    description    = VALUES(description)
`
	tx, err := dbx.Beginx()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, p := range profiles {
		if _, err := tx.Exec(q, p.Name, p.DownloadSpeed, p.UploadSpeed, p.DataLimit, p.Price, p.Description); err != nil {
			return fmt.Errorf("insert profile %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit profiles: %w", err)
	}
	return nil
}

func int64ptr(i int64) *int64 { return &i }
