package config

// SupportedPropertyTypes is the vocabulary seeded into tipos_propiedad. Types
// are never created through the API.
var SupportedPropertyTypes = []string{
	"casa",
	"departamento",
	"ph",
	"terreno",
	"local",
	"oficina",
}
