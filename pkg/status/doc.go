/*
Package status renders operation results for the terminal.

	+-------------+        +-------------+
	|  operation  | -----> |   status    |
	|  (reports)  |        |  (render)   |
	+-------------+        +------+------+
	                              |
	                       +------+------+
	                       |   stdout    |
	                       +-------------+

🎯 Purpose:
- Turns StatusReport and BundleResult values into plain text lines
- Keeps presentation out of the operation package

🔄 Flow:
1. A command runs an operation.Operator method
2. The result is handed to a Formatter
3. Lines are written to the command's output writer

🎨 Color:
Tier labels are colored with fatih/color. Color is dropped automatically when
the output is not a terminal, so piped output stays stable.

🔍 Example:

	report, err := op.Status(ctx)
	if err != nil {
		return err
	}
	return status.WriteStatus(os.Stdout, status.NewDefaultFormatter(), report)
*/
package status
