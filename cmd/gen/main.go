package main

import (
	"adpulse/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.GoogleConnectionModel{},
		model.ClientModel{},
		model.CampaignModel{},
		model.DailyMetricsModel{},
		model.CampaignMetricsModel{},
		model.SyncLogModel{},
		model.AlertModel{},
		model.SettingModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
