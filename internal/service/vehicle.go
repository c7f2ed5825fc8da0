package service

import (
	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/repository"
)

// undefinedValue replaces blank identifying fields on new cards
const undefinedValue = "Tanımsız"

// VehicleInput carries the descriptive fields shared by card and quote creation.
// Pointers keep "missing" apart from "empty": notlar and adres may be blank but must be sent.
type VehicleInput struct {
	AdSoyad        *string `json:"adSoyad" validate:"required,max=200"`
	TelNo          *string `json:"telNo" validate:"required,max=50"`
	MarkaModel     *string `json:"markaModel" validate:"required,max=200"`
	Plaka          *string `json:"plaka" validate:"required,max=50"`
	Sasi           *string `json:"sasi" validate:"required,max=100"`
	Renk           *string `json:"renk" validate:"required,max=50"`
	GirisTarihi    *string `json:"girisTarihi" validate:"required,max=50"`
	Notlar         *string `json:"notlar" validate:"required"`
	Adres          *string `json:"adres" validate:"required"`
	OdemeAlindi    *bool   `json:"odemeAlindi,omitempty"`
	PeriyodikBakim *bool   `json:"periyodikBakim,omitempty"`
	Duzenleyen     *string `json:"duzenleyen,omitempty" validate:"omitempty,max=200"`
}

// toModel converts validated input. Blank identifying fields become Tanımsız and
// a missing editor defaults to the acting user.
func (in *VehicleInput) toModel(editor string) models.Vehicle {
	v := models.Vehicle{
		AdSoyad:     orUndefined(in.AdSoyad),
		TelNo:       deref(in.TelNo),
		MarkaModel:  orUndefined(in.MarkaModel),
		Plaka:       orUndefined(in.Plaka),
		Sasi:        orUndefined(in.Sasi),
		Renk:        deref(in.Renk),
		GirisTarihi: orUndefined(in.GirisTarihi),
		Notlar:      deref(in.Notlar),
		Adres:       deref(in.Adres),
		Duzenleyen:  editor,
	}
	if in.OdemeAlindi != nil {
		v.OdemeAlindi = *in.OdemeAlindi
	}
	if in.PeriyodikBakim != nil {
		v.PeriyodikBakim = *in.PeriyodikBakim
	}
	if in.Duzenleyen != nil && *in.Duzenleyen != "" {
		v.Duzenleyen = *in.Duzenleyen
	}
	return v
}

// UpdateVehicleRequest is a partial update of a card or quote. Only present fields change.
type UpdateVehicleRequest struct {
	AdSoyad        *string `json:"adSoyad,omitempty" validate:"omitempty,max=200"`
	TelNo          *string `json:"telNo,omitempty" validate:"omitempty,max=50"`
	MarkaModel     *string `json:"markaModel,omitempty" validate:"omitempty,max=200"`
	Plaka          *string `json:"plaka,omitempty" validate:"omitempty,max=50"`
	Km             *int    `json:"km,omitempty" validate:"omitempty,min=0"`
	ModelYili      *int    `json:"modelYili,omitempty" validate:"omitempty,min=0"`
	Sasi           *string `json:"sasi,omitempty" validate:"omitempty,max=100"`
	Renk           *string `json:"renk,omitempty" validate:"omitempty,max=50"`
	GirisTarihi    *string `json:"girisTarihi,omitempty" validate:"omitempty,max=50"`
	Notlar         *string `json:"notlar,omitempty"`
	Adres          *string `json:"adres,omitempty"`
	OdemeAlindi    *bool   `json:"odemeAlindi,omitempty"`
	PeriyodikBakim *bool   `json:"periyodikBakim,omitempty"`
	Duzenleyen     *string `json:"duzenleyen,omitempty" validate:"omitempty,max=200"`
}

func (r *UpdateVehicleRequest) columns() map[string]interface{} {
	updates := map[string]interface{}{}
	setString := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	setString("ad_soyad", r.AdSoyad)
	setString("tel_no", r.TelNo)
	setString("marka_model", r.MarkaModel)
	setString("plaka", r.Plaka)
	setString("sasi", r.Sasi)
	setString("renk", r.Renk)
	setString("giris_tarihi", r.GirisTarihi)
	setString("notlar", r.Notlar)
	setString("adres", r.Adres)
	setString("duzenleyen", r.Duzenleyen)
	if r.Km != nil {
		updates["km"] = *r.Km
	}
	if r.ModelYili != nil {
		updates["model_yili"] = *r.ModelYili
	}
	if r.OdemeAlindi != nil {
		updates["odeme_alindi"] = *r.OdemeAlindi
	}
	if r.PeriyodikBakim != nil {
		updates["periyodik_bakim"] = *r.PeriyodikBakim
	}
	return updates
}

// WorkItemInput is one line of a card or quote. id is accepted and ignored.
type WorkItemInput struct {
	ID          *int64  `json:"id,omitempty"`
	BirimAdedi  *int    `json:"birimAdedi" validate:"required,min=0"`
	ParcaAdi    *string `json:"parcaAdi" validate:"required,max=255"`
	BirimFiyati *int    `json:"birimFiyati" validate:"required,min=0"`
	ToplamFiyat *int    `json:"toplamFiyat" validate:"required,min=0"`
	StockID     *int64  `json:"stockId,omitempty"`
	IsFromStock *bool   `json:"isFromStock,omitempty"`
}

func (in *WorkItemInput) toModel(tenantID int64) models.WorkItem {
	item := models.WorkItem{
		TenantModel: models.TenantModel{TenantID: tenantID},
		BirimAdedi:  deref(in.BirimAdedi),
		ParcaAdi:    deref(in.ParcaAdi),
		BirimFiyati: deref(in.BirimFiyati),
		ToplamFiyat: deref(in.ToplamFiyat),
		StockID:     in.StockID,
	}
	if in.IsFromStock != nil {
		item.IsFromStock = *in.IsFromStock
	}
	return item
}

// buildWorkItems validates the nested lines and checks that every stock
// reference belongs to the tenant
func buildWorkItems(stock repository.StockRepositoryInterface, tenantID int64, inputs []WorkItemInput) ([]models.WorkItem, error) {
	items := make([]models.WorkItem, 0, len(inputs))
	for i := range inputs {
		item := inputs[i].toModel(tenantID)
		if err := checkStockReference(stock, tenantID, item.IsFromStock, item.StockID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// checkStockReference requires a stock id for lines taken from stock and
// rejects any stock id the tenant does not own, whatever isFromStock says.
func checkStockReference(stock repository.StockRepositoryInterface, tenantID int64, fromStock bool, stockID *int64) error {
	if stockID == nil {
		if fromStock {
			return apperrors.ErrStockReferenceRequired
		}
		return nil
	}
	exists, err := stock.Exists(tenantID, *stockID)
	if err != nil {
		return repoError(err, apperrors.ErrStockNotFound, "check stock reference")
	}
	if !exists {
		return apperrors.ErrStockNotFound
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func orUndefined(s *string) string {
	if s == nil || *s == "" {
		return undefinedValue
	}
	return *s
}
