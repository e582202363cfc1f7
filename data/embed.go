package data

import (
	_ "embed"
)

//go:embed seed/db.json
var SeedDB []byte
