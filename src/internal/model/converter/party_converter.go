package converter

import (
	"dispatch-service/src/internal/entity"
	"dispatch-service/src/internal/model"
)

func CustomerToResponse(customer *entity.Customer) *model.CustomerResponse {
	return &model.CustomerResponse{
		ID:          customer.ID,
		TenantID:    customer.TenantID,
		Name:        customer.Name,
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber.String,
		AddressLine: customer.AddressLine.String,
		IsArchived:  customer.IsArchived,
		CreatedAt:   customer.CreatedAt,
		UpdatedAt:   customer.UpdatedAt,
	}
}

func CustomersToResponse(customers []entity.Customer) []model.CustomerResponse {
	responses := make([]model.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, *CustomerToResponse(&customers[i]))
	}
	return responses
}

func DriverToResponse(driver *entity.Driver) *model.DriverResponse {
	return &model.DriverResponse{
		ID:          driver.ID,
		TenantID:    driver.TenantID,
		Name:        driver.Name,
		PhoneNumber: driver.PhoneNumber.String,
		LicenseNo:   driver.LicenseNo.String,
		IsArchived:  driver.IsArchived,
		CreatedAt:   driver.CreatedAt,
		UpdatedAt:   driver.UpdatedAt,
	}
}

func DriversToResponse(drivers []entity.Driver) []model.DriverResponse {
	responses := make([]model.DriverResponse, 0, len(drivers))
	for i := range drivers {
		responses = append(responses, *DriverToResponse(&drivers[i]))
	}
	return responses
}

func DispatcherToResponse(dispatcher *entity.Dispatcher) *model.DispatcherResponse {
	return &model.DispatcherResponse{
		ID:          dispatcher.ID,
		TenantID:    dispatcher.TenantID,
		Name:        dispatcher.Name,
		Email:       dispatcher.Email.String,
		PhoneNumber: dispatcher.PhoneNumber.String,
		IsArchived:  dispatcher.IsArchived,
		CreatedAt:   dispatcher.CreatedAt,
		UpdatedAt:   dispatcher.UpdatedAt,
	}
}

func DispatchersToResponse(dispatchers []entity.Dispatcher) []model.DispatcherResponse {
	responses := make([]model.DispatcherResponse, 0, len(dispatchers))
	for i := range dispatchers {
		responses = append(responses, *DispatcherToResponse(&dispatchers[i]))
	}
	return responses
}

func VehicleToResponse(vehicle *entity.Vehicle) *model.VehicleResponse {
	return &model.VehicleResponse{
		ID:                 vehicle.ID,
		TenantID:           vehicle.TenantID,
		RegistrationNumber: vehicle.RegistrationNumber,
		Nickname:           vehicle.Nickname.String,
		Make:               vehicle.Make.String,
		Model:              vehicle.Model.String,
		IsAutomatic:        vehicle.IsAutomatic,
		IsArchived:         vehicle.IsArchived,
		CreatedAt:          vehicle.CreatedAt,
		UpdatedAt:          vehicle.UpdatedAt,
	}
}

func VehiclesToResponse(vehicles []entity.Vehicle) []model.VehicleResponse {
	responses := make([]model.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, *VehicleToResponse(&vehicles[i]))
	}
	return responses
}
