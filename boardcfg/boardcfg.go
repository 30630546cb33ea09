// Package boardcfg holds pin tables for supported boards.
package boardcfg

//go:generate go run tivaport/host/cmd/portgen -in launchpad.yaml -out launchpad_cfg.go
