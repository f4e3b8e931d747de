package state

import "sync"

// Store хранит оба среза состояния и применяет события атомарно,
// в порядке поступления завершений. Эффекты двух действий никогда
// не перемешиваются: каждое событие применяется под общим мьютексом.
type Store struct {
	mu       sync.Mutex
	session  SessionState
	articles ArticlesState
}

// New создает пустой Store: сессии нет, коллекция статей пуста
func New() *Store {
	return &Store{}
}

// ApplySession применяет событие к срезу сессии
func (s *Store) ApplySession(ev SessionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = ReduceSession(s.session, ev)
}

// ApplyArticles применяет событие к срезу коллекции статей
func (s *Store) ApplyArticles(ev ArticleEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = ReduceArticles(s.articles, ev)
}

// Session возвращает снимок среза сессии
func (s *Store) Session() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Articles возвращает снимок среза коллекции статей
func (s *Store) Articles() ArticlesState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.articles
}
