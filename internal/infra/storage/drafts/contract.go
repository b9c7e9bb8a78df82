package drafts

import "github.com/m04kA/Mercearia-ReservationService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
