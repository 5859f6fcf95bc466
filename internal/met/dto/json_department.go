package dto

import "github.com/handiism/metroart/internal/model"

// JSONDepartments is the response of the departments endpoint.
type JSONDepartments struct {
	Departments []JSONDepartment `json:"departments"`
}

// JSONDepartment is one entry of the departments array.
type JSONDepartment struct {
	DepartmentID int    `json:"departmentId"`
	DisplayName  string `json:"displayName"`
}

// ToDepartment converts JSONDepartment to a model.Department.
func (jd JSONDepartment) ToDepartment() model.Department {
	return model.Department{
		ID:   jd.DepartmentID,
		Name: jd.DisplayName,
	}
}

// ToDepartments converts the response, preserving order. A response
// without a departments array yields an empty, non-nil slice.
func (jd JSONDepartments) ToDepartments() []model.Department {
	departments := make([]model.Department, 0, len(jd.Departments))
	for _, d := range jd.Departments {
		departments = append(departments, d.ToDepartment())
	}
	return departments
}
