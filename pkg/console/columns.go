package console

// Column описывает колонку списка: имя поля сущности и подпись.
// Набор колонок каждой сущности статичен и объявлен один раз,
// страницы не собирают описания строк на лету
type Column struct {
	Field string
	Label string
}

// CompanyColumns - колонки списка компаний
var CompanyColumns = []Column{
	{Field: "name", Label: "Name"},
	{Field: "address", Label: "Address"},
	{Field: "email", Label: "Email"},
	{Field: "phone", Label: "Phone"},
	{Field: "vatCode", Label: "VAT"},
}

// LocalUnitColumns - колонки списка производственных единиц
var LocalUnitColumns = []Column{
	{Field: "name", Label: "Name"},
	{Field: "address", Label: "Address"},
	{Field: "municipality", Label: "Municipality"},
	{Field: "phone", Label: "Phone"},
	{Field: "mainActivity", Label: "Main activity"},
}

// DepartmentColumns - колонки списка отделов
var DepartmentColumns = []Column{
	{Field: "name", Label: "Name"},
}

// HRColumns - колонки списка сотрудников
var HRColumns = []Column{
	{Field: "name", Label: "Name"},
	{Field: "surname", Label: "Surname"},
	{Field: "fiscalCode", Label: "Fiscal code"},
	{Field: "email", Label: "Email"},
	{Field: "duty", Label: "Duty"},
}

// EquipmentColumns - колонки списка оборудования
var EquipmentColumns = []Column{
	{Field: "name", Label: "Name"},
	{Field: "type", Label: "Type"},
	{Field: "brand", Label: "Brand"},
	{Field: "serialNumber", Label: "Serial number"},
}

// VehicleColumns - колонки списка транспорта
var VehicleColumns = []Column{
	{Field: "name", Label: "Name"},
	{Field: "brand", Label: "Brand"},
	{Field: "model", Label: "Model"},
	{Field: "licensePlate", Label: "License plate"},
}

// PropertyColumns - колонки списка недвижимости
var PropertyColumns = []Column{
	{Field: "name", Label: "Name"},
	{Field: "address", Label: "Address"},
	{Field: "municipality", Label: "Municipality"},
	{Field: "cadastralCategory", Label: "Cadastral category"},
}

// DocumentColumns - колонки строчного отображения документов
var DocumentColumns = []Column{
	{Field: "name", Label: "Name"},
	{Field: "description", Label: "Description"},
	{Field: "fileType", Label: "Type"},
	{Field: "fileSize", Label: "Size"},
	{Field: "createdAt", Label: "Uploaded"},
}
