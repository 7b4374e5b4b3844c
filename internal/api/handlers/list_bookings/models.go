package list_bookings

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// Пустые строки трактуются как отсутствующие фильтры
func ToServiceRequest(dateStr, startDateStr, endDateStr, clientName, workerName, status, sortBy string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}
	if clientName != "" {
		req.ClientName = &clientName
	}
	if workerName != "" {
		req.WorkerName = &workerName
	}
	if status != "" {
		req.Status = &status
	}
	if sortBy != "" {
		req.SortBy = &sortBy
	}

	return req, nil
}
