package main

import (
	"github.com/sekolahdev/admission_service/config"
	"github.com/sekolahdev/admission_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
