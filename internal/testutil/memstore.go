// Package testutil 提供基于内存 map 的仓储实现，
// service / handler 测试不依赖真实数据库。
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"

	"adoptlink/internal/domain"
)

type MemStore struct {
	mu sync.Mutex

	Users        map[string]domain.User
	Profiles     map[string]domain.ParentProfile // key: user id
	Children     map[string]domain.Child
	Applications map[string]domain.AdoptionApplication
	Visits       map[string]domain.HomeVisit
	Documents    map[string]domain.Document
	Tasks        map[string]domain.StaffTask

	// FailChildUpdate 注入儿童状态写失败，验证事务回滚
	FailChildUpdate error
}

func NewMemStore() *MemStore {
	return &MemStore{
		Users:        map[string]domain.User{},
		Profiles:     map[string]domain.ParentProfile{},
		Children:     map[string]domain.Child{},
		Applications: map[string]domain.AdoptionApplication{},
		Visits:       map[string]domain.HomeVisit{},
		Documents:    map[string]domain.Document{},
		Tasks:        map[string]domain.StaffTask{},
	}
}

func (m *MemStore) Stores() domain.Stores {
	return domain.Stores{
		Users:        &userRepo{m},
		Profiles:     &profileRepo{m},
		Children:     &childRepo{m},
		Applications: &appRepo{m},
		Visits:       &visitRepo{m},
		Documents:    &docRepo{m},
		Tasks:        &taskRepo{m},
		Stats:        &statsRepo{m},
	}
}

// InTx 快照整套状态，fn 失败则恢复快照（模拟回滚）
func (m *MemStore) InTx(_ context.Context, fn func(s domain.Stores) error) error {
	snap := m.snapshot()
	if err := fn(m.Stores()); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	users        map[string]domain.User
	profiles     map[string]domain.ParentProfile
	children     map[string]domain.Child
	applications map[string]domain.AdoptionApplication
	visits       map[string]domain.HomeVisit
	documents    map[string]domain.Document
	tasks        map[string]domain.StaffTask
}

func copyMap[T any](src map[string]T) map[string]T {
	dst := make(map[string]T, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (m *MemStore) snapshot() snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshot{
		users:        copyMap(m.Users),
		profiles:     copyMap(m.Profiles),
		children:     copyMap(m.Children),
		applications: copyMap(m.Applications),
		visits:       copyMap(m.Visits),
		documents:    copyMap(m.Documents),
		tasks:        copyMap(m.Tasks),
	}
}

func (m *MemStore) restore(s snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Users = s.users
	m.Profiles = s.profiles
	m.Children = s.children
	m.Applications = s.applications
	m.Visits = s.visits
	m.Documents = s.documents
	m.Tasks = s.tasks
}

// ---- users ----

type userRepo struct{ m *MemStore }

func (r *userRepo) Create(_ context.Context, u *domain.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.Users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	r.m.Users[u.ID] = *u
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if u, ok := r.m.Users[id]; ok {
		out := u
		return &out, nil
	}
	return nil, nil
}

func (r *userRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.Users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *userRepo) List(_ context.Context, q domain.ListUsersQuery) ([]domain.User, int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.User
	for _, u := range r.m.Users {
		if q.Search != "" &&
			!strings.Contains(u.Email, q.Search) && !strings.Contains(u.Name, q.Search) {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

func (r *userRepo) UpdateProfile(_ context.Context, id, name, phone, address string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.Users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Name, u.Phone, u.Address = name, phone, address
	r.m.Users[id] = u
	return nil
}

func (r *userRepo) UpdatePassword(_ context.Context, id, hash string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.Users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = hash
	r.m.Users[id] = u
	return nil
}

func (r *userRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.Users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Status = status
	r.m.Users[id] = u
	return nil
}

func (r *userRepo) SoftDelete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.Users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.m.Users, id)
	return nil
}

// ---- parent profiles ----

type profileRepo struct{ m *MemStore }

func (r *profileRepo) Create(_ context.Context, p *domain.ParentProfile) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.Profiles[p.UserID] = *p
	return nil
}

func (r *profileRepo) FindByUserID(_ context.Context, userID string) (*domain.ParentProfile, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if p, ok := r.m.Profiles[userID]; ok {
		out := p
		return &out, nil
	}
	return nil, nil
}

func (r *profileRepo) Update(_ context.Context, p *domain.ParentProfile) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	existing, ok := r.m.Profiles[p.UserID]
	if !ok {
		return domain.ErrNotFound
	}
	id := existing.ID
	existing = *p
	existing.ID = id
	r.m.Profiles[p.UserID] = existing
	return nil
}

// ---- children ----

type childRepo struct{ m *MemStore }

func (r *childRepo) ListVisible(_ context.Context, viewerID string) ([]domain.ChildListItem, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.ChildListItem
	for _, c := range r.m.Children {
		item := domain.ChildListItem{Child: c}
		for _, a := range r.m.Applications {
			if a.ChildID == c.ID && a.ParentID == viewerID {
				id, st := a.ID, a.Status
				item.ApplicationID, item.ApplicationStatus = &id, &st
			}
		}
		if c.Status == domain.ChildAdopted && item.ApplicationID == nil {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *childRepo) FindByID(_ context.Context, id string) (*domain.Child, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if c, ok := r.m.Children[id]; ok {
		out := c
		return &out, nil
	}
	return nil, nil
}

func (r *childRepo) FindDetail(_ context.Context, id, viewerID string) (*domain.ChildListItem, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	c, ok := r.m.Children[id]
	if !ok {
		return nil, nil
	}
	item := domain.ChildListItem{Child: c}
	for _, a := range r.m.Applications {
		if a.ChildID == id && a.ParentID == viewerID {
			aid, st := a.ID, a.Status
			item.ApplicationID, item.ApplicationStatus = &aid, &st
		}
	}
	return &item, nil
}

func (r *childRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.FailChildUpdate != nil {
		return r.m.FailChildUpdate
	}
	c, ok := r.m.Children[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Status = status
	r.m.Children[id] = c
	return nil
}

// ---- applications ----

type appRepo struct{ m *MemStore }

func (r *appRepo) Exists(_ context.Context, parentID, childID string) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, a := range r.m.Applications {
		if a.ParentID == parentID && a.ChildID == childID {
			return true, nil
		}
	}
	return false, nil
}

func (r *appRepo) Create(_ context.Context, a *domain.AdoptionApplication) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, existing := range r.m.Applications {
		if existing.ParentID == a.ParentID && existing.ChildID == a.ChildID {
			return domain.ErrConflict
		}
	}
	r.m.Applications[a.ID] = *a
	return nil
}

func (r *appRepo) ListByParent(_ context.Context, parentID string) ([]domain.ApplicationDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.ApplicationDetail
	for _, a := range r.m.Applications {
		if a.ParentID != parentID {
			continue
		}
		d := domain.ApplicationDetail{AdoptionApplication: a}
		if c, ok := r.m.Children[a.ChildID]; ok {
			d.ChildName, d.ChildDateOfBirth = c.Name, c.DateOfBirth
			d.ChildGender, d.ChildPhotoURL = c.Gender, c.PhotoURL
		}
		if a.AssignedStaffID != nil {
			if u, ok := r.m.Users[*a.AssignedStaffID]; ok {
				d.AssignedStaffName = u.Name
			}
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---- visits ----

type visitRepo struct{ m *MemStore }

func (r *visitRepo) ListByParent(_ context.Context, parentID string) ([]domain.VisitDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.VisitDetail
	for _, v := range r.m.Visits {
		a, ok := r.m.Applications[v.ApplicationID]
		if !ok || a.ParentID != parentID {
			continue
		}
		d := domain.VisitDetail{HomeVisit: v}
		if u, ok := r.m.Users[v.StaffID]; ok {
			d.StaffName = u.Name
		}
		if c, ok := r.m.Children[a.ChildID]; ok {
			d.ChildName = c.Name
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *visitRepo) ListByStaff(_ context.Context, staffID string) ([]domain.VisitDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.VisitDetail
	for _, v := range r.m.Visits {
		if v.StaffID != staffID {
			continue
		}
		d := domain.VisitDetail{HomeVisit: v}
		if a, ok := r.m.Applications[v.ApplicationID]; ok {
			if u, ok := r.m.Users[a.ParentID]; ok {
				d.ParentName = u.Name
			}
			if c, ok := r.m.Children[a.ChildID]; ok {
				d.ChildName = c.Name
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// ---- documents ----

type docRepo struct{ m *MemStore }

func (r *docRepo) Create(_ context.Context, d *domain.Document) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.Documents[d.ID] = *d
	return nil
}

func (r *docRepo) ListByUser(_ context.Context, userID string) ([]domain.Document, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.Document
	for _, d := range r.m.Documents {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *docRepo) ListPending(_ context.Context) ([]domain.PendingDocument, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.PendingDocument
	for _, d := range r.m.Documents {
		if d.Status != domain.DocumentPending {
			continue
		}
		pd := domain.PendingDocument{Document: d}
		if u, ok := r.m.Users[d.UserID]; ok {
			pd.ParentName = u.Name
		}
		out = append(out, pd)
	}
	return out, nil
}

func (r *docRepo) Review(_ context.Context, id, status, reviewerID, notes string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	d, ok := r.m.Documents[id]
	if !ok || d.Status != domain.DocumentPending {
		return domain.ErrNotFound
	}
	d.Status, d.VerifiedBy, d.ReviewNotes = status, &reviewerID, notes
	r.m.Documents[id] = d
	return nil
}

// ---- tasks ----

type taskRepo struct{ m *MemStore }

func (r *taskRepo) ListByStaff(_ context.Context, staffID string) ([]domain.TaskDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []domain.TaskDetail
	for _, t := range r.m.Tasks {
		if t.StaffID != staffID {
			continue
		}
		d := domain.TaskDetail{StaffTask: t}
		if u, ok := r.m.Users[t.AssignedBy]; ok {
			d.AssignedByName = u.Name
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (r *taskRepo) UpdateStatus(_ context.Context, id, staffID, status, notes string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.Tasks[id]
	if !ok || t.StaffID != staffID {
		return domain.ErrNotFound
	}
	t.Status, t.Notes = status, notes
	r.m.Tasks[id] = t
	return nil
}

// ---- stats ----

type statsRepo struct{ m *MemStore }

func (r *statsRepo) DashboardStats(_ context.Context) (*domain.DashboardStats, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var s domain.DashboardStats
	for _, c := range r.m.Children {
		s.TotalChildren++
		if c.Status == domain.ChildAdopted {
			s.AdoptedChildren++
		}
	}
	for _, u := range r.m.Users {
		if u.Role == domain.RoleParent && u.Status == domain.UserVerified {
			s.VerifiedParents++
		}
	}
	for _, d := range r.m.Documents {
		if d.Status == domain.DocumentPending {
			s.PendingDocuments++
		}
	}
	for _, a := range r.m.Applications {
		if a.Status == domain.ApplicationPending {
			s.PendingApplications++
		}
	}
	return &s, nil
}
