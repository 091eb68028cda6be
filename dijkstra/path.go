package dijkstra

// reconstruct walks prev backward from target to source and returns the
// route in forward order. limit bounds the walk (|V|) so a corrupt
// predecessor map can never loop; nil is returned if source is not reached.
func reconstruct(prev map[string]string, source, target string, limit int) []string {
	path := make([]string, 0, 8)
	for cur := target; ; cur = prev[cur] {
		path = append(path, cur)
		if cur == source {
			break
		}
		if prev[cur] == NoPredecessor || len(path) > limit {
			return nil
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// stepsOf derives the consecutive (From, To) hops of path.
func stepsOf(path []string) []Step {
	if len(path) < 2 {
		return []Step{}
	}
	steps := make([]Step, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		steps = append(steps, Step{From: path[i], To: path[i+1]})
	}

	return steps
}
