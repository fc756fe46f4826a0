package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timedTask(id string, startMin, endMin int) Task {
	t := Task{ID: id, Kind: KindTimeBlock}
	t.SetStartMinutes(startMin)
	t.SetEndMinutes(endMin)
	return t
}

func layoutByID(layouts []TaskLayout) map[string]TaskLayout {
	m := make(map[string]TaskLayout, len(layouts))
	for _, l := range layouts {
		m[l.TaskID] = l
	}
	return m
}

func TestLayoutDay_SingleTask(t *testing.T) {
	layouts := LayoutDay([]Task{timedTask("a", 9*60, 10*60)})
	require.Len(t, layouts, 1)
	assert.Equal(t, TaskLayout{TaskID: "a", Column: 0, TotalColumns: 1}, layouts[0])
}

func TestLayoutDay_IdenticalSpans(t *testing.T) {
	layouts := LayoutDay([]Task{
		timedTask("a", 9*60, 10*60),
		timedTask("b", 9*60, 10*60),
	})
	require.Len(t, layouts, 2)
	m := layoutByID(layouts)
	assert.Equal(t, 2, m["a"].TotalColumns)
	assert.Equal(t, 2, m["b"].TotalColumns)
	assert.NotEqual(t, m["a"].Column, m["b"].Column)

	// Identical starts keep input order: first input gets column 0.
	assert.Equal(t, 0, m["a"].Column)
	assert.Equal(t, 1, m["b"].Column)
}

func TestLayoutDay_TouchingBoundaryIsNotOverlap(t *testing.T) {
	layouts := LayoutDay([]Task{
		timedTask("a", 9*60, 10*60),
		timedTask("b", 10*60, 11*60),
	})
	m := layoutByID(layouts)
	assert.Equal(t, TaskLayout{TaskID: "a", Column: 0, TotalColumns: 1}, m["a"])
	assert.Equal(t, TaskLayout{TaskID: "b", Column: 0, TotalColumns: 1}, m["b"])
}

func TestLayoutDay_OverlappingTasksGetDistinctColumns(t *testing.T) {
	tasks := []Task{
		timedTask("a", 9*60, 11*60),
		timedTask("b", 9*60+30, 10*60+30),
		timedTask("c", 10*60, 12*60),
		timedTask("d", 11*60+30, 12*60+30),
	}
	m := layoutByID(LayoutDay(tasks))
	for i := range tasks {
		for j := range tasks {
			if i == j || !tasks[i].Overlaps(&tasks[j]) {
				continue
			}
			assert.NotEqual(t, m[tasks[i].ID].Column, m[tasks[j].ID].Column,
				"%s and %s overlap and must not share a column", tasks[i].ID, tasks[j].ID)
		}
	}
}

func TestLayoutDay_TotalColumnsLowerBound(t *testing.T) {
	tasks := []Task{
		timedTask("a", 9*60, 12*60),
		timedTask("b", 9*60, 10*60),
		timedTask("c", 10*60, 11*60),
		timedTask("d", 9*60+30, 10*60+30),
	}
	m := layoutByID(LayoutDay(tasks))
	for i := range tasks {
		cols := map[int]struct{}{m[tasks[i].ID].Column: {}}
		for j := range tasks {
			if i != j && tasks[i].Overlaps(&tasks[j]) {
				cols[m[tasks[j].ID].Column] = struct{}{}
			}
		}
		assert.GreaterOrEqual(t, m[tasks[i].ID].TotalColumns, len(cols), tasks[i].ID)
	}
}

func TestLayoutDay_ColumnReuseAfterGapClears(t *testing.T) {
	// b overlaps a, c starts after a ends: c reuses column 0. The width
	// pass still reports 2 for the overlapping pair only.
	m := layoutByID(LayoutDay([]Task{
		timedTask("a", 9*60, 10*60),
		timedTask("b", 9*60+15, 10*60+15),
		timedTask("c", 10*60+30, 11*60),
	}))
	assert.Equal(t, 0, m["a"].Column)
	assert.Equal(t, 1, m["b"].Column)
	assert.Equal(t, 0, m["c"].Column)
	assert.Equal(t, 1, m["c"].TotalColumns)
	assert.Equal(t, 2, m["a"].TotalColumns)
	assert.Equal(t, 2, m["b"].TotalColumns)
}

func TestLayoutDay_WidthCanExceedOwnChain(t *testing.T) {
	// d overlaps a, b, and c which sit in three different columns, so
	// d's width is 4 even though the greedy pass only needed to look at
	// its own column chain.
	m := layoutByID(LayoutDay([]Task{
		timedTask("a", 9*60, 10*60),
		timedTask("b", 9*60, 10*60),
		timedTask("c", 9*60, 10*60),
		timedTask("d", 9*60+30, 11*60),
	}))
	assert.Equal(t, 4, m["d"].TotalColumns)
	assert.Equal(t, 3, m["d"].Column)
}

func TestLayoutDay_SkipsTodosAndPlacesUntimed(t *testing.T) {
	tasks := []Task{
		{ID: "todo", Kind: KindTodo, Title: "buy milk"},
		{ID: "untimed", Kind: KindTimeBlock},
		timedTask("a", 9*60, 10*60),
	}
	layouts := LayoutDay(tasks)
	require.Len(t, layouts, 2)
	m := layoutByID(layouts)
	_, hasTodo := m["todo"]
	assert.False(t, hasTodo, "todos are never laid out spatially")
	assert.Equal(t, TaskLayout{TaskID: "untimed", Column: 0, TotalColumns: 1}, m["untimed"])
}

func TestLayoutDay_Deterministic(t *testing.T) {
	tasks := []Task{
		timedTask("a", 9*60, 11*60),
		timedTask("b", 9*60, 10*60),
		timedTask("c", 9*60, 10*60+30),
	}
	first := LayoutDay(tasks)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, LayoutDay(tasks))
	}
}
