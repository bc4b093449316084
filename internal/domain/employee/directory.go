package employee

import (
	"sort"
	"sync"
)

// Directory is a read-only view over a snapshot of employees. Each employee
// points at its manager; the reverse subordinate index is built on first use.
type Directory struct {
	byID map[string]Employee

	once         sync.Once
	subordinates map[string][]string
}

func NewDirectory(employees []Employee) *Directory {
	byID := make(map[string]Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	return &Directory{byID: byID}
}

func (d *Directory) Get(id string) (Employee, bool) {
	e, ok := d.byID[id]
	return e, ok
}

// ReportingChain walks manager pointers upward starting at the direct
// manager. The walk stops at the first manager already in the chain, so a
// corrupt cycle in the data terminates.
func (d *Directory) ReportingChain(id string) []Employee {
	e, ok := d.byID[id]
	if !ok {
		return nil
	}

	var chain []Employee
	seen := make(map[string]bool)
	next := e.ManagerID
	for next != nil {
		if seen[*next] {
			break
		}
		manager, ok := d.byID[*next]
		if !ok {
			break
		}
		seen[manager.ID] = true
		chain = append(chain, manager)
		next = manager.ManagerID
	}
	return chain
}

// Subordinates returns direct reports of managerID.
func (d *Directory) Subordinates(managerID string) []Employee {
	d.buildIndex()
	ids := d.subordinates[managerID]
	out := make([]Employee, 0, len(ids))
	for _, id := range ids {
		out = append(out, d.byID[id])
	}
	return out
}

// AllSubordinates returns every direct and indirect report of managerID,
// breadth first.
func (d *Directory) AllSubordinates(managerID string) []Employee {
	d.buildIndex()

	var out []Employee
	visited := map[string]bool{managerID: true}
	queue := append([]string(nil), d.subordinates[managerID]...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		out = append(out, d.byID[id])
		queue = append(queue, d.subordinates[id]...)
	}
	return out
}

func (d *Directory) buildIndex() {
	d.once.Do(func() {
		d.subordinates = make(map[string][]string)
		for _, e := range d.byID {
			if e.ManagerID != nil {
				d.subordinates[*e.ManagerID] = append(d.subordinates[*e.ManagerID], e.ID)
			}
		}
		for _, ids := range d.subordinates {
			sort.Strings(ids)
		}
	})
}
