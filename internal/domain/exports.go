package domain

import (
	interfaces "libprime/internal/domain/interfaces"
	types "libprime/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Verdict     = types.Verdict
	WideVerdict = types.WideVerdict
	ScanReport  = types.ScanReport
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Oracle     = interfaces.Oracle
	OracleFunc = interfaces.OracleFunc
)
