package state

import (
	pkgapi "github.com/iudanet/inkpress/pkg/api"
)

// ArticleOp — действие над срезом коллекции статей
type ArticleOp int

const (
	ArticleList ArticleOp = iota
	ArticleGet
	ArticleCreate
	ArticleUpdate
	ArticleDelete
)

func (op ArticleOp) String() string {
	switch op {
	case ArticleList:
		return "list"
	case ArticleGet:
		return "get"
	case ArticleCreate:
		return "create"
	case ArticleUpdate:
		return "update"
	case ArticleDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// ArticlesState описывает последнее известное состояние коллекции статей
type ArticlesState struct {
	Selected  *pkgapi.Article // результат последнего get
	Error     string
	Items     []pkgapi.Article
	IsLoading bool
}

// ArticleEvent — событие одной фазы одного действия над коллекцией
type ArticleEvent struct {
	Article   *pkgapi.Article  // payload успешных get/create/update
	DeletedID string           // id удалённой статьи при успешном delete
	Err       string           // сообщение при PhaseFailed
	Items     []pkgapi.Article // payload успешного list
	Op        ArticleOp
	Phase     Phase
}

// ReduceArticles применяет событие к состоянию коллекции статей.
// Чистая функция: исходный срез Items не мутируется, правки делаются на копии.
func ReduceArticles(s ArticlesState, ev ArticleEvent) ArticlesState {
	switch ev.Phase {
	case PhaseRequested:
		s.IsLoading = true
		s.Error = ""
	case PhaseFailed:
		s.IsLoading = false
		s.Error = ev.Err
	case PhaseSucceeded:
		s.IsLoading = false
		switch ev.Op {
		case ArticleList:
			// Коллекция замещается целиком, порядок сервера сохраняется
			s.Items = ev.Items
		case ArticleGet:
			s.Selected = ev.Article
		case ArticleCreate:
			if ev.Article != nil {
				items := make([]pkgapi.Article, 0, len(s.Items)+1)
				items = append(items, s.Items...)
				s.Items = append(items, *ev.Article)
			}
		case ArticleUpdate:
			if ev.Article != nil {
				items := make([]pkgapi.Article, len(s.Items))
				copy(items, s.Items)
				for i := range items {
					if items[i].ID == ev.Article.ID {
						items[i] = *ev.Article
					}
				}
				s.Items = items
			}
		case ArticleDelete:
			items := make([]pkgapi.Article, 0, len(s.Items))
			for _, a := range s.Items {
				if a.ID != ev.DeletedID {
					items = append(items, a)
				}
			}
			s.Items = items
		}
	}
	return s
}
