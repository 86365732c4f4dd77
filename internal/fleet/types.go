// Copyright (c) 2025 Copybus
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package fleet holds the domain records returned by the fleet API.
// JSON tags follow the remote API's column-prefixed field names.
package fleet

// Company is a transport company.
type Company struct {
	ID        int    `json:"emp_codigo"`
	Name      string `json:"emp_nome"`
	Email     string `json:"emp_email"`
	CNPJ      string `json:"emp_cnpj"`
	Phone     string `json:"emp_telefone"`
	Address   string `json:"emp_endereco"`
	Logo      string `json:"emp_logo,omitempty"`
	CreatedAt string `json:"emp_created_at,omitempty"`
	UpdatedAt string `json:"emp_updated_at,omitempty"`
}

// Vehicle is a fleet vehicle.
type Vehicle struct {
	ID        int    `json:"vei_codigo"`
	Model     string `json:"vei_modelo"`
	Plate     string `json:"vei_placa"`
	Prefix    string `json:"vei_prefixo"`
	Year      int    `json:"vei_ano"`
	Status    string `json:"vei_status"`
	Odometer  int    `json:"vei_odometro"`
	Image     string `json:"vei_imagem,omitempty"`
	FleetID   int    `json:"fro_codigo,omitempty"`
	UpdatedAt string `json:"vei_updated_at,omitempty"`
}

// Driver is a vehicle driver.
type Driver struct {
	ID        int    `json:"mot_codigo"`
	Name      string `json:"mot_nome"`
	License   string `json:"mot_cnh"`
	Phone     string `json:"mot_telefone,omitempty"`
	CompanyID int    `json:"emp_codigo"`
}

// Fleet groups vehicles within a company.
type Fleet struct {
	ID        int    `json:"fro_codigo"`
	Name      string `json:"fro_nome"`
	CompanyID int    `json:"emp_codigo"`
}
