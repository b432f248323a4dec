// Package ports declares what the orchestrator needs from the rest of the
// system. Each port has an in-process adapter in package adapters.
package ports

//go:generate mockgen -destination=mocks/mocks.go -package=mocks portail-rse/internal/reglementation/ports RegistryPort,CSRDPort,CompanyPort
