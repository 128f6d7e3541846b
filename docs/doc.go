// Package docs provides generated OpenAPI documentation.
//
// PDF Extractor API
//
//	@title			PDF Extractor API
//	@version		1.0
//	@description	Structured data extraction from PDF documents using vision models.
//	@termsOfService	http://swagger.io/terms/
//
//	@contact.name	API Support
//	@contact.url	https://github.com/pradyten/pdf-extractor
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8501
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/extractor/serve.go -o ./swagger --parseDependency --parseInternal
