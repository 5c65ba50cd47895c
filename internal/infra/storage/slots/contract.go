package slots

import (
	"github.com/haarkliniek/HK-AvailabilityService/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
