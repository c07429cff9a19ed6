package services

import (
	"context"
	"strings"

	"nailstudio-backend/models"
	"nailstudio-backend/notify"
	"nailstudio-backend/repository"
	"nailstudio-backend/utils"

	"github.com/rs/zerolog/log"
)

// CatalogService manages the services offered by the salon.
type CatalogService struct {
	store      *repository.Store
	messenger  notify.Messenger
	bookingURL string
	newID      func() string
}

func NewCatalogService(store *repository.Store, messenger notify.Messenger, bookingURL string) *CatalogService {
	return &CatalogService{store: store, messenger: messenger, bookingURL: bookingURL, newID: utils.GenerateID}
}

// CatalogInput is the admin form for a catalog item. Nil fields are kept on update.
type CatalogInput struct {
	Title       *string `json:"title"`
	Price       *int64  `json:"price"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (s *CatalogService) List(ctx context.Context, query string) ([]models.CatalogItem, error) {
	return s.store.Catalog.List(ctx, query)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*models.CatalogItem, error) {
	return s.store.Catalog.Get(ctx, id)
}

func (in CatalogInput) apply(item *models.CatalogItem) error {
	if in.Title != nil {
		item.Title = strings.TrimSpace(*in.Title)
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if in.Description != nil {
		item.Description = strings.TrimSpace(*in.Description)
	}
	if in.Image != nil {
		item.Image = strings.TrimSpace(*in.Image)
	}

	if item.Title == "" {
		return invalid("El nombre del servicio es obligatorio.")
	}
	if item.Price < 0 {
		return invalid("El precio no puede ser negativo.")
	}
	if item.Image == "" {
		return invalid("La imagen del servicio es obligatoria (URL o Archivo).")
	}
	return nil
}

// Create adds a new item at the end of the catalog.
func (s *CatalogService) Create(ctx context.Context, in CatalogInput) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := in.apply(&item); err != nil {
		return nil, err
	}
	id, err := uniqueID(ctx, s.newID, func(ctx context.Context, id string) (bool, error) {
		_, err := s.store.Catalog.Get(ctx, id)
		if err == nil {
			return true, nil
		}
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	})
	if err != nil {
		return nil, err
	}
	item.ID = id
	if err := s.store.Catalog.Create(ctx, &item); err != nil {
		return nil, err
	}
	log.Info().Str("catalog_id", item.ID).Str("title", item.Title).Msg("catalog item created")
	return &item, nil
}

// Update edits an item. Existing appointments keep their price snapshot.
func (s *CatalogService) Update(ctx context.Context, id string, in CatalogInput) (*models.CatalogItem, error) {
	item, err := s.store.Catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.apply(item); err != nil {
		return nil, err
	}
	if err := s.store.Catalog.Save(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetImage replaces the item image with an uploaded data URL.
func (s *CatalogService) SetImage(ctx context.Context, id, image string) (*models.CatalogItem, error) {
	return s.Update(ctx, id, CatalogInput{Image: &image})
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.store.Catalog.Delete(ctx, id)
}

// ShareView is the message used to share a catalog item.
type ShareView struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

func (s *CatalogService) Share(ctx context.Context, id string) (*ShareView, error) {
	item, err := s.store.Catalog.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	url := strings.TrimRight(s.bookingURL, "/") + "/?service=" + notify.EncodeComponent(item.ID)
	return &ShareView{
		Title: item.Title,
		Text:  s.messenger.CatalogShareText(item, url),
		URL:   url,
	}, nil
}
