package domain

import "sort"

// TaskLayout assigns a visual column to one task so that overlapping
// entries on a day grid render side by side without collision. Layouts
// are derived per render pass and never persisted.
type TaskLayout struct {
	TaskID       string
	Column       int
	TotalColumns int
}

// LayoutDay computes column assignments for one calendar day's tasks
// using interval partitioning with column reuse.
//
// To-dos are skipped entirely: they have no time extent and are never
// placed on the grid. Untimed entities occupy column 0 of a width-1
// group. Timed entities are packed greedily into the first column whose
// occupants they do not overlap, in start-time order; ties keep input
// order, so identical inputs always produce identical layouts.
//
// TotalColumns is computed in a second pass as one plus the number of
// other columns holding at least one overlapping entity. It can exceed
// what a task's own column chain suggests; it only decides rendering
// width, not placement.
func LayoutDay(tasks []Task) []TaskLayout {
	timed := make([]int, 0, len(tasks))
	untimed := make([]int, 0)
	for i := range tasks {
		if tasks[i].Kind == KindTodo {
			continue
		}
		if tasks[i].HasTimeExtent() {
			timed = append(timed, i)
		} else {
			untimed = append(untimed, i)
		}
	}

	sort.SliceStable(timed, func(a, b int) bool {
		return tasks[timed[a]].StartMinutes() < tasks[timed[b]].StartMinutes()
	})

	// Greedy first-fit column packing.
	var columns [][]int
	colOf := make(map[int]int, len(timed))
	for _, i := range timed {
		placed := false
		for c := range columns {
			if !overlapsAny(&tasks[i], columns[c], tasks) {
				columns[c] = append(columns[c], i)
				colOf[i] = c
				placed = true
				break
			}
		}
		if !placed {
			columns = append(columns, []int{i})
			colOf[i] = len(columns) - 1
		}
	}

	layoutOf := make(map[int]TaskLayout, len(timed)+len(untimed))
	for _, i := range untimed {
		layoutOf[i] = TaskLayout{TaskID: tasks[i].ID, Column: 0, TotalColumns: 1}
	}
	for _, i := range timed {
		others := make(map[int]struct{})
		for _, j := range timed {
			if j == i || colOf[j] == colOf[i] {
				continue
			}
			if tasks[i].Overlaps(&tasks[j]) {
				others[colOf[j]] = struct{}{}
			}
		}
		layoutOf[i] = TaskLayout{
			TaskID:       tasks[i].ID,
			Column:       colOf[i],
			TotalColumns: len(others) + 1,
		}
	}

	// Emit in input order.
	out := make([]TaskLayout, 0, len(layoutOf))
	for i := range tasks {
		if l, ok := layoutOf[i]; ok {
			out = append(out, l)
		}
	}
	return out
}

func overlapsAny(t *Task, column []int, tasks []Task) bool {
	for _, j := range column {
		if t.Overlaps(&tasks[j]) {
			return true
		}
	}
	return false
}
