package core

import (
	"context"
	"time"

	"github.com/statisticsnorway/dapla-start-api/pkg/errs"
	"github.com/statisticsnorway/dapla-start-api/pkg/service"
)

const rootLevel = "1"

var _ service.SubjectAreaService = &subjectAreaService{}

type subjectAreaService struct {
	klassAPI      service.KlassAPI
	subjectAreaID string
	metrics       *Metrics
	now           func() time.Time
}

func (s *subjectAreaService) GetSubjectAreas(ctx context.Context) (*service.SubjectAreaTree, error) {
	const op errs.Op = "subjectAreaService.GetSubjectAreas"

	items, err := s.klassAPI.GetCodesAt(ctx, s.subjectAreaID, s.now())
	if err != nil {
		s.metrics.Error(LocationKlass)

		return nil, errs.E(op, err)
	}

	return subjectAreaTree(items), nil
}

// subjectAreaTree hangs every item below its parent, keeping the order of
// the input. Items whose parent is unknown are left out.
func subjectAreaTree(items []service.ClassificationItem) *service.SubjectAreaTree {
	nodes := make(map[string]*service.SubjectArea, len(items))
	for _, item := range items {
		nodes[item.Code] = &service.SubjectArea{
			Key:   item.Code,
			Label: item.Name,
		}
	}

	tree := &service.SubjectAreaTree{
		Root: []*service.SubjectArea{},
	}

	for _, item := range items {
		node := nodes[item.Code]

		if item.Level == rootLevel {
			tree.Root = append(tree.Root, node)
			continue
		}

		parent, ok := nodes[item.ParentCode]
		if !ok || parent == node {
			continue
		}

		parent.Children = append(parent.Children, node)
	}

	return tree
}

func NewSubjectAreaService(klassAPI service.KlassAPI, subjectAreaID string, metrics *Metrics, now func() time.Time) *subjectAreaService {
	return &subjectAreaService{
		klassAPI:      klassAPI,
		subjectAreaID: subjectAreaID,
		metrics:       metrics,
		now:           now,
	}
}
