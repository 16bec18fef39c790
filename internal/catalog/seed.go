// Wayfinder - Points of Interest Discovery and Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfinder

package catalog

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfinder/internal/models"
)

var sampleCreatedAt = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func everyDay(hours string) map[string]string {
	m := make(map[string]string, len(weekdays))
	for _, d := range weekdays {
		m[d] = hours
	}
	return m
}

var samplePointParams = []models.PointParams{
	{
		ID:             "cristo-redentor",
		Name:           "Cristo Redentor",
		Description:    "Estátua icônica do Rio de Janeiro, uma das Sete Maravilhas do Mundo Moderno.",
		Latitude:       -22.9519,
		Longitude:      -43.2105,
		Category:       models.CategoryMonument,
		Rating:         4.7,
		PriceRange:     models.PriceMedium,
		Tags:           []string{"iconic", "religious", "panoramic_view", "must_visit"},
		Address:        "Parque Nacional da Tijuca - Alto da Boa Vista, Rio de Janeiro - RJ",
		Images:         []string{"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800"},
		OperatingHours: everyDay("08:00-19:00"),
	},
	{
		ID:             "pao-de-acucar",
		Name:           "Pão de Açúcar",
		Description:    "Morro com vista panorâmica da cidade do Rio de Janeiro, acessível por bondinho.",
		Latitude:       -22.9485,
		Longitude:      -43.1654,
		Category:       models.CategoryNature,
		Rating:         4.6,
		PriceRange:     models.PriceMedium,
		Tags:           []string{"panoramic_view", "cable_car", "sunset", "romantic"},
		Address:        "Av. Pasteur, 520 - Urca, Rio de Janeiro - RJ",
		Images:         []string{"https://images.unsplash.com/photo-1483729558449-99ef09a8c325?w=800"},
		OperatingHours: everyDay("08:00-20:00"),
	},
	{
		ID:             "museu-do-amanha",
		Name:           "Museu do Amanhã",
		Description:    "Museu de ciências aplicadas que explora as possibilidades para os próximos 50 anos.",
		Latitude:       -22.8955,
		Longitude:      -43.1784,
		Category:       models.CategoryMuseum,
		Rating:         4.4,
		PriceRange:     models.PriceLow,
		Tags:           []string{"science", "interactive", "family_friendly", "educational"},
		Address:        "Praça Mauá, 1 - Centro, Rio de Janeiro - RJ",
		Images:         []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800"},
		OperatingHours: everyDay("10:00-18:00"),
	},
	{
		ID:             "teatro-amazonas",
		Name:           "Teatro Amazonas",
		Description:    "Teatro histórico de Manaus, símbolo da época áurea da borracha na Amazônia.",
		Latitude:       -3.1305,
		Longitude:      -60.0238,
		Category:       models.CategoryCultural,
		Rating:         4.5,
		PriceRange:     models.PriceLow,
		Tags:           []string{"historic", "architecture", "opera", "cultural"},
		Address:        "Largo de São Sebastião, s/n - Centro, Manaus - AM",
		Images:         []string{"https://images.unsplash.com/photo-1580655653885-65763b2597d0?w=800"},
		OperatingHours: everyDay("09:00-17:00"),
	},
	{
		ID:             "pelourinho",
		Name:           "Pelourinho",
		Description:    "Centro histórico de Salvador, Patrimônio Mundial da UNESCO com arquitetura colonial.",
		Latitude:       -12.9714,
		Longitude:      -38.5124,
		Category:       models.CategoryHistoric,
		Rating:         4.3,
		PriceRange:     models.PriceFree,
		Tags:           []string{"unesco", "colonial", "colorful", "music", "capoeira"},
		Address:        "Pelourinho - Centro Histórico, Salvador - BA",
		OperatingHours: everyDay("24h"),
	},
	{
		ID:             "cataratas-do-iguacu",
		Name:           "Cataratas do Iguaçu",
		Description:    "Conjunto de quedas d'água na fronteira entre Brasil e Argentina, Patrimônio Mundial da UNESCO.",
		Latitude:       -25.6953,
		Longitude:      -54.4367,
		Category:       models.CategoryNature,
		Rating:         4.8,
		PriceRange:     models.PriceMedium,
		Tags:           []string{"unesco", "waterfalls", "nature", "hiking", "photography"},
		Address:        "Parque Nacional do Iguaçu, Foz do Iguaçu - PR",
		OperatingHours: everyDay("09:00-17:00"),
	},
	{
		ID:             "masp",
		Name:           "MASP",
		Description:    "Museu de Arte de São Paulo, com o vão livre sobre a Avenida Paulista.",
		Latitude:       -23.5614,
		Longitude:      -46.6559,
		Category:       models.CategoryMuseum,
		Rating:         4.6,
		PriceRange:     models.PriceLow,
		Tags:           []string{"art", "architecture", "educational"},
		Address:        "Av. Paulista, 1578 - Bela Vista, São Paulo - SP",
		OperatingHours: everyDay("10:00-18:00"),
	},
	{
		ID:             "parque-ibirapuera",
		Name:           "Parque Ibirapuera",
		Description:    "Maior parque urbano de São Paulo, com museus, lagos e ciclovias.",
		Latitude:       -23.5874,
		Longitude:      -46.6576,
		Category:       models.CategoryNature,
		Rating:         4.7,
		PriceRange:     models.PriceFree,
		Tags:           []string{"park", "family_friendly", "cycling"},
		Address:        "Av. Pedro Álvares Cabral - Vila Mariana, São Paulo - SP",
		OperatingHours: everyDay("05:00-00:00"),
	},
	{
		ID:             "mercado-municipal",
		Name:           "Mercado Municipal",
		Description:    "Mercadão de São Paulo, famoso pelo sanduíche de mortadela e pelos vitrais.",
		Latitude:       -23.5417,
		Longitude:      -46.6297,
		Category:       models.CategoryRestaurant,
		Rating:         4.5,
		PriceRange:     models.PriceModerate,
		Tags:           []string{"food", "market", "historic"},
		Address:        "R. da Cantareira, 306 - Centro, São Paulo - SP",
		OperatingHours: everyDay("06:00-18:00"),
	},
}

// SamplePoints returns the built-in demonstration catalog.
func SamplePoints() []models.PointOfInterest {
	points := make([]models.PointOfInterest, 0, len(samplePointParams))
	for _, params := range samplePointParams {
		params.CreatedAt = sampleCreatedAt
		p, err := models.NewPointOfInterest(params)
		if err != nil {
			panic(fmt.Sprintf("catalog: invalid sample point %s: %v", params.ID, err))
		}
		points = append(points, *p)
	}
	return points
}

// LoadSeedFile reads a JSON array of points. Each entry is normalized the same
// way as NewPointOfInterest; the first invalid entry fails the load.
func LoadSeedFile(path string) ([]models.PointOfInterest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and normalizes a JSON array of points.
func ParseSeed(data []byte) ([]models.PointOfInterest, error) {
	var raw []models.PointOfInterest
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	points := make([]models.PointOfInterest, 0, len(raw))
	for i := range raw {
		r := &raw[i]
		p, err := models.NewPointOfInterest(models.PointParams{
			ID:             r.ID,
			Name:           r.Name,
			Description:    r.Description,
			Latitude:       r.Coordinates.Latitude,
			Longitude:      r.Coordinates.Longitude,
			Category:       r.Category,
			Rating:         r.Rating,
			PriceRange:     r.PriceRange,
			Tags:           r.Tags,
			Address:        r.Address,
			Images:         r.Images,
			ContactInfo:    r.ContactInfo,
			OperatingHours: r.OperatingHours,
			CreatedAt:      r.Metadata.CreatedAt,
			UpdatedAt:      r.Metadata.UpdatedAt,
		})
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		points = append(points, *p)
	}
	return points, nil
}

// Seed upserts points into store in a single call.
func Seed(ctx context.Context, store Store, points []models.PointOfInterest) error {
	if len(points) == 0 {
		return nil
	}
	if err := store.Upsert(ctx, points...); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}
