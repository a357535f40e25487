package roadmap

// KanbanColumn is one status bucket of the board, in flatten order.
type KanbanColumn struct {
	Status Status
	Tasks  []Task
}

// Count returns the column cardinality.
func (c KanbanColumn) Count() int { return len(c.Tasks) }

// KanbanBoard partitions tasks into the five fixed status buckets.
// Every task lands in exactly one bucket; the normalizer guarantees the
// status set, so the column counts always sum to Total.
type KanbanBoard struct {
	Columns []KanbanColumn
	Total   int
}

// GroupByStatus builds the board. Tasks without dates are included; time
// is irrelevant on a Kanban board.
func GroupByStatus(tasks []Task) KanbanBoard {
	board := KanbanBoard{
		Columns: make([]KanbanColumn, 0, len(StatusOrder)),
		Total:   len(tasks),
	}
	for _, status := range StatusOrder {
		col := KanbanColumn{Status: status}
		for _, t := range tasks {
			if t.Status == status {
				col.Tasks = append(col.Tasks, t)
			}
		}
		board.Columns = append(board.Columns, col)
	}
	return board
}
