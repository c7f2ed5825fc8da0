// Package seed loads initial accounts and stock from YAML files.
package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"garage-backend/internal/database/models"
	"garage-backend/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// UserData describes one account to create
type UserData struct {
	Username         string `yaml:"username"`
	Password         string `yaml:"password"`
	TenantID         int64  `yaml:"tenant_id"`
	Role             string `yaml:"role"`
	IsActive         *bool  `yaml:"is_active,omitempty"`
	MembershipMonths int    `yaml:"membership_months,omitempty"`
	FirmaAdi         string `yaml:"firma_adi,omitempty"`
	YetkiliKisi      string `yaml:"yetkili_kisi,omitempty"`
	Telefon          string `yaml:"telefon,omitempty"`
	Email            string `yaml:"email,omitempty"`
}

// StockData describes one stock item owned by a seeded account
type StockData struct {
	Owner           string `yaml:"owner"`
	StokAdi         string `yaml:"stok_adi"`
	Adet            int    `yaml:"adet"`
	Info            string `yaml:"info,omitempty"`
	Kategori        string `yaml:"kategori,omitempty"`
	MinStokSeviyesi *int   `yaml:"min_stok_seviyesi,omitempty"`
}

type usersFile struct {
	Users []UserData `yaml:"users"`
}

type stockFile struct {
	Stock []StockData `yaml:"stock"`
}

// Data is everything read from a seed directory
type Data struct {
	Users []UserData
	Stock []StockData
}

// Result counts the rows created by Apply
type Result struct {
	UsersCreated int
	StockCreated int
}

// LoadDir collects every users*.yaml and stock*.yaml below dir
func LoadDir(dir string) (*Data, error) {
	data := &Data{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		name := filepath.Base(path)
		switch {
		case strings.HasPrefix(name, "users"):
			var file usersFile
			if err := readYAML(path, &file); err != nil {
				return err
			}
			data.Users = append(data.Users, file.Users...)
		case strings.HasPrefix(name, "stock"):
			var file stockFile
			if err := readYAML(path, &file); err != nil {
				return err
			}
			data.Stock = append(data.Stock, file.Stock...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

func readYAML(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// Apply creates the seeded users and stock. Existing usernames and existing
// stock names within a tenant are left untouched, so Apply can run repeatedly.
func Apply(db *gorm.DB, data *Data) (*Result, error) {
	log := logger.New()
	result := &Result{}
	tenants := make(map[string]int64, len(data.Users))

	for _, u := range data.Users {
		user, created, err := createUser(db, u)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", u.Username, err)
		}
		tenants[user.Username] = user.TenantID
		if created {
			result.UsersCreated++
		}
	}
	log.Infof("Users: %d created, %d total", result.UsersCreated, len(data.Users))

	for _, s := range data.Stock {
		tenantID, ok := tenants[s.Owner]
		if !ok {
			log.WithField("owner", s.Owner).Warnf("Skipping stock %s for unknown owner", s.StokAdi)
			continue
		}
		created, err := createStock(db, tenantID, s)
		if err != nil {
			return nil, fmt.Errorf("failed to create stock %s: %w", s.StokAdi, err)
		}
		if created {
			result.StockCreated++
		}
	}
	log.Infof("Stock: %d created, %d total", result.StockCreated, len(data.Stock))

	return result, nil
}

func createUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	var user models.User
	err := db.Where("username = ?", data.Username).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	if data.Username == "" || data.Password == "" || data.TenantID == 0 {
		return nil, false, errors.New("username, password and tenant_id are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.UserRoleUser
	if data.Role == string(models.UserRoleAdmin) {
		role = models.UserRoleAdmin
	}

	user = models.User{
		TenantID:     data.TenantID,
		Username:     data.Username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     data.IsActive == nil || *data.IsActive,
		FirmaAdi:     data.FirmaAdi,
		YetkiliKisi:  data.YetkiliKisi,
		Telefon:      data.Telefon,
		Email:        data.Email,
	}
	if data.MembershipMonths > 0 {
		end := time.Now().AddDate(0, data.MembershipMonths, 0)
		user.MembershipEndDate = &end
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

func createStock(db *gorm.DB, tenantID int64, data StockData) (bool, error) {
	var count int64
	if err := db.Model(&models.Stock{}).
		Where("tenant_id = ? AND stok_adi = ?", tenantID, data.StokAdi).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query stock: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	minLevel := data.MinStokSeviyesi
	if minLevel == nil {
		level := models.DefaultMinStockLevel
		minLevel = &level
	}

	stock := models.Stock{
		TenantModel:     models.TenantModel{TenantID: tenantID},
		StokAdi:         data.StokAdi,
		Adet:            data.Adet,
		Info:            data.Info,
		EklenisTarihi:   time.Now(),
		MinStokSeviyesi: minLevel,
	}
	if data.Kategori != "" {
		stock.Kategori = &data.Kategori
	}

	if err := db.Create(&stock).Error; err != nil {
		return false, fmt.Errorf("failed to create stock: %w", err)
	}
	return true, nil
}
