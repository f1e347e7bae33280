package service

import (
	"github.com/hance08/atm/internal/store"
	"github.com/rs/zerolog"
)

type Config struct {
	DefaultCurrency string
}

type Service struct {
	Teller *TellerService
}

func NewService(repo store.Repository, cfg Config, log zerolog.Logger) *Service {
	return &Service{
		Teller: NewTellerService(repo, cfg, log),
	}
}
