package docstore

import (
	"context"

	"github.com/pkg/errors"
)

// Action 队列条目的动作类型
type Action string

const (
	ActionIndex  Action = "index"
	ActionDelete Action = "delete"
	ActionNested Action = "nested"
)

// QueueEntry 文档存储同步队列条目
//
// Path 仅在嵌套更新时有值，整条记录的索引和删除为空。
type QueueEntry struct {
	QueueID string
	BeanID  any
	Path    string
	Action  Action
}

// Updates 收集一次提交产生的文档存储变更，延迟派发
type Updates struct {
	queueEntries []QueueEntry
}

func NewUpdates() *Updates {
	return &Updates{}
}

// QueueIndex 排队一条索引条目
func (u *Updates) QueueIndex(queueID string, beanID any) {
	u.queueEntries = append(u.queueEntries, QueueEntry{
		QueueID: queueID,
		BeanID:  beanID,
		Action:  ActionIndex,
	})
}

// QueueDelete 排队一条删除条目
func (u *Updates) QueueDelete(queueID string, beanID any) {
	u.queueEntries = append(u.queueEntries, QueueEntry{
		QueueID: queueID,
		BeanID:  beanID,
		Action:  ActionDelete,
	})
}

// QueueEntries 返回已收集的全部条目
func (u *Updates) QueueEntries() []QueueEntry {
	return u.queueEntries
}

// DocType 实体类型在文档存储侧的插件接口
type DocType interface {
	// QueueID 实体类型在同步队列中的标识
	QueueID() string
	// DeleteByID 按主键删除文档
	DeleteByID(ctx context.Context, id any) error
}

// DeleteEvent 实体删除事件，立即派发或排队延迟处理
type DeleteEvent struct {
	docType DocType
	beanID  any
}

func NewDeleteEvent(docType DocType, beanID any) *DeleteEvent {
	return &DeleteEvent{docType: docType, beanID: beanID}
}

// Update 立即派发删除
func (e *DeleteEvent) Update(ctx context.Context) error {
	if e.docType == nil {
		return errors.New("doc type is required")
	}
	return e.docType.DeleteByID(ctx, e.beanID)
}

// AddToQueue 排队延迟处理
func (e *DeleteEvent) AddToQueue(updates *Updates) {
	updates.QueueDelete(e.docType.QueueID(), e.beanID)
}
