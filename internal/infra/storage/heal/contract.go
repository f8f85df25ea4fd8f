package heal

import "github.com/m04kA/heal-booking-service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
