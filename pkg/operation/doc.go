/*
Package operation implements the reporting operations over a scanned tree.

	+-------------+
	|  Operator   |
	| (Commands)  |
	+------+------+
	       |
	+------+------+
	|    scan     |
	|  (Walk +    |
	|  Classify)  |
	+------+------+
	       |
	+------+------+
	|    billy    |
	| (Filesystem)|
	+-------------+

🎯 Purpose:
- Status: per-tier file count, byte size and approximate token totals
- List: sorted root-relative paths of one tier
- Bundle: copy one tier into an output directory, keeping relative paths

🔄 Flow:
1. Every call runs a fresh scan; results are never cached
2. Status and Bundle re-read files through the source filesystem
3. Results are returned as values; rendering lives in the status package

⚡ Error Handling:
- Files unreadable during detection are unmarked
- Files unreadable during status totals contribute nothing
- An output directory that cannot be created fails the bundle
- A failed copy fails the bundle; earlier copies stay on disk

🔍 Example:

	op, err := operation.New(operation.Options{Root: "."})
	if err != nil {
		return err
	}
	res, err := op.Bundle(ctx, tier.Hot, ".tmp_hot")
*/
package operation
