/*
Package config loads the optional context-tiers configuration file.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   HCL    | |   JSON   |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Extends the built-in exclusion names and text extensions
- Adds doublestar exclusion patterns
- Sets the default bundle directory

The built-in defaults are never removed by a config file. A missing default
file is not an error; the defaults apply.

🔍 Example (.context-tiers.yaml):

	exclude:
	  - vendor
	exclude_globs:
	  - "docs/generated/**"
	extensions:
	  - .go
	out: .context/hot

The same settings in HCL (.context-tiers.hcl):

	exclude       = ["vendor"]
	exclude_globs = ["docs/generated/**"]
	extensions    = [".go"]
	out           = default_out
*/
package config
