// seed crea bicicletas de ejemplo en el catálogo usando el mismo caso de uso que la API.
//
// Uso: go run ./cmd/seed [ruta/bikes.json]
// El archivo es una lista [{"type":"electric","color":"black"}, ...]; sin argumento
// se usa un catálogo por defecto.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/bikeshop-api/internal/application/dto"
	"github.com/jhoicas/bikeshop-api/internal/application/usecase"
	"github.com/jhoicas/bikeshop-api/internal/bootstrap"
	"github.com/jhoicas/bikeshop-api/pkg/config"
	"github.com/jhoicas/bikeshop-api/pkg/logger"
)

var defaultBikes = []dto.CreateBikeRequest{
	{Type: "standard", Color: "red"},
	{Type: "standard", Color: "blue"},
	{Type: "electric", Color: "black"},
	{Type: "electric", Color: "white"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	bikes := defaultBikes
	if len(os.Args) > 1 {
		bikes, err = readBikes(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("file", os.Args[1]).Msg("leer catálogo")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stores, err := bootstrap.OpenStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer stores.Close(context.Background())

	uc := usecase.NewBikeUseCase(stores.Bikes, log)
	created := 0
	for _, b := range bikes {
		out, err := uc.CreateBike(ctx, b)
		if err != nil {
			log.Error().Err(err).Str("type", b.Type).Str("color", b.Color).Msg("bicicleta omitida")
			continue
		}
		created++
		log.Info().Str("id", out.ID).Str("type", out.Type).Str("color", out.Color).Msg("bicicleta creada")
	}
	log.Info().Int("created", created).Int("total", len(bikes)).Msg("seed completado")
}

func readBikes(path string) ([]dto.CreateBikeRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []dto.CreateBikeRequest
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decodificar %s: %w", path, err)
	}
	return out, nil
}
