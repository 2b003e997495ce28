package pathops

// BuildArgs assembles the editor argument list for one batch: per
// operand, select the top element, duplicate it, select the operand,
// apply the operation verb (consuming the duplicate and the operand),
// and deselect; then save the working file and quit. The duplicate is
// what each operation consumes, so the original top element survives
// for the rest of the batch and for later batches.
func BuildArgs(top string, batch []string, verb, file string) []string {
	args := make([]string, 0, 5*len(batch)+3)
	for _, id := range batch {
		args = append(args,
			"--select="+top,
			"--verb=EditDuplicate",
			"--select="+id,
			"--verb="+verb,
			"--verb=EditDeselect",
		)
	}
	args = append(args, "--verb=FileSave", "--verb=FileQuit", "-f", file)
	return args
}
