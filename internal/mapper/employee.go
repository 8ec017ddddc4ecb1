package mapper

import (
	"github.com/UnknownOlympus/demeter/internal/dto"
	"github.com/UnknownOlympus/demeter/internal/models"
)

// ToEmployee converts the API representation into the stored entity.
func ToEmployee(employeeDto dto.EmployeeDto) models.Employee {
	return models.Employee{
		ID:        employeeDto.ID,
		FirstName: employeeDto.FirstName,
		LastName:  employeeDto.LastName,
		Email:     employeeDto.Email,
	}
}

// ToEmployeeDto converts the stored entity into the API representation.
func ToEmployeeDto(employee models.Employee) dto.EmployeeDto {
	return dto.EmployeeDto{
		ID:        employee.ID,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		Email:     employee.Email,
	}
}

// ToEmployeeDtos maps a list of entities. The result is never nil, so an empty store encodes as [].
func ToEmployeeDtos(employees []models.Employee) []dto.EmployeeDto {
	result := make([]dto.EmployeeDto, 0, len(employees))
	for _, employee := range employees {
		result = append(result, ToEmployeeDto(employee))
	}

	return result
}
