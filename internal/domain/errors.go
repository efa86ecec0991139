package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrLocalUnitNotFound  = errors.New("local unit not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrHRNotFound         = errors.New("hr record not found")
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrModuleNotFound     = errors.New("module not found")
	ErrUserNotFound       = errors.New("user not found")

	ErrDuplicateDepartmentName = errors.New("department with this name already exists in the same local unit")
	ErrAssignmentNotFound      = errors.New("department assignment not found")
	ErrOpenAssignmentExists    = errors.New("hr already has an open assignment in this department")
	ErrAssignmentClosed        = errors.New("closed assignments are immutable history and cannot be removed")
	ErrParentMismatch          = errors.New("record does not belong to the referenced parent")
	ErrEmptyFile               = errors.New("uploaded file is empty")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
