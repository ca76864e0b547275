package config

// Merge overlays override on base and returns the result; neither input is
// modified. Non-zero override fields win, so CLI flags layered over file
// config, or repo config over global config, take precedence.
func Merge(base, override *Config) *Config {
	result := *base

	setString(&result.OutputFormat, override.OutputFormat)
	setString(&result.Title, override.Title)
	setString(&result.CatalogFile, override.CatalogFile)
	setString(&result.NumberFormat, override.NumberFormat)
	setString(&result.FallbackText, override.FallbackText)
	setString(&result.Sheet, override.Sheet)
	setString(&result.Where, override.Where)

	setString(&result.RowStyles.Even.Background, override.RowStyles.Even.Background)
	setString(&result.RowStyles.Even.Foreground, override.RowStyles.Even.Foreground)
	setString(&result.RowStyles.Odd.Background, override.RowStyles.Odd.Background)
	setString(&result.RowStyles.Odd.Foreground, override.RowStyles.Odd.Foreground)

	setInt(&result.Columns.SequenceWidth, override.Columns.SequenceWidth)
	setInt(&result.Columns.UnitNameWidth, override.Columns.UnitNameWidth)
	setInt(&result.Columns.UnitCodeWidth, override.Columns.UnitCodeWidth)
	setString(&result.Columns.UnitNameLabel, override.Columns.UnitNameLabel)

	return &result
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
