package contract

import "github.com/m04kA/SMC-AdPlacementService/pkg/dbmetrics"

// DBExecutor интерфейс выполнения запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor
