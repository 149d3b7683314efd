// Package config loads cage configuration.
//
// Two sources exist:
//
//   - Environment variables (CAGES_SUM, CAGES_DIGITS, CAGES_EXCLUDE,
//     CAGES_MAX_DIGIT, CAGES_LIMIT) describe a single cage. Their defaults
//     solve sum 20 in 4 digits without 2 or 7.
//   - Cage files describe many cages at once. YAML files are decoded
//     strictly; CUE files are unified with an embedded schema first.
//
// # Cage File Format
//
//	max_digit: 9
//	cages:
//	  - name: top-left
//	    sum: 20
//	    digits: 4
//	    exclude: [2, 7]
//
// The CUE form uses the same field names.
package config
