package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"laptopcare/internal/domain/entities"
	"laptopcare/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProblemsTableName = "problems"

type problemStepItem struct {
	ID          string `dynamodbav:"id"`
	StepNumber  int    `dynamodbav:"step_number"`
	Instruction string `dynamodbav:"instruction"`
	Completed   bool   `dynamodbav:"completed"`
}

type problemItem struct {
	ID             string            `dynamodbav:"id"`
	OwnerID        string            `dynamodbav:"owner_id"`
	LaptopBrand    string            `dynamodbav:"laptop_brand"`
	LaptopModel    string            `dynamodbav:"laptop_model"`
	Description    string            `dynamodbav:"description"`
	Status         string            `dynamodbav:"status"`
	Steps          []problemStepItem `dynamodbav:"steps"`
	CompletedSteps int               `dynamodbav:"completed_steps"`
	CreatedAt      string            `dynamodbav:"created_at"`
	UpdatedAt      string            `dynamodbav:"updated_at"`
}

// ProblemDynamoRepository persists the Problem aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Steps are embedded in the item so the ordering and lifecycle invariants
// can be enforced with single-item conditional writes:
//   - completing step n is guarded by completed_steps = n-1 and an open
//     status, which serializes concurrent completions;
//   - finalizing is guarded by an open status and full completion, which
//     makes solved/escalated terminal.
//
// Both conditional writes surface a failed guard as the zero entity, the
// same convention the rest of the repositories use.

type ProblemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProblemRepository = (*ProblemDynamoRepository)(nil)

func NewProblemDynamoRepository(ddb *dynamodb.Client) *ProblemDynamoRepository {
	return &ProblemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROBLEMS_TABLE", defaultProblemsTableName),
	}
}

func (r *ProblemDynamoRepository) Create(ctx context.Context, p entities.Problem) (entities.Problem, error) {
	av, err := attributevalue.MarshalMap(toProblemItem(p))
	if err != nil {
		return entities.Problem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Problem{}, err
	}
	return p, nil
}

func (r *ProblemDynamoRepository) GetByID(ctx context.Context, id string) (entities.Problem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Problem{}, err
	}
	if len(out.Item) == 0 {
		return entities.Problem{}, nil
	}

	var it problemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Problem{}, err
	}
	return fromProblemItem(it), nil
}

func (r *ProblemDynamoRepository) CompleteStep(ctx context.Context, problemID string, stepNumber int) (entities.Problem, error) {
	updateExpr := fmt.Sprintf("SET steps[%d].completed = :done, completed_steps = :n, #updated_at = :updated_at", stepNumber-1)
	return r.conditionalUpdate(ctx, problemID, &dynamodb.UpdateItemInput{
		ConditionExpression: aws.String("attribute_exists(#id) AND completed_steps = :prev AND #status = :open"),
		UpdateExpression:    aws.String(updateExpr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":done": &types.AttributeValueMemberBOOL{Value: true},
			":n":    &types.AttributeValueMemberN{Value: strconv.Itoa(stepNumber)},
			":prev": &types.AttributeValueMemberN{Value: strconv.Itoa(stepNumber - 1)},
			":open": &types.AttributeValueMemberS{Value: string(entities.ProblemStatusOpen)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
	})
}

func (r *ProblemDynamoRepository) FinalizeStatus(ctx context.Context, problemID string, status entities.ProblemStatus, totalSteps int) (entities.Problem, error) {
	return r.conditionalUpdate(ctx, problemID, &dynamodb.UpdateItemInput{
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :open AND completed_steps = :total"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
			":open":   &types.AttributeValueMemberS{Value: string(entities.ProblemStatusOpen)},
			":total":  &types.AttributeValueMemberN{Value: strconv.Itoa(totalSteps)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
	})
}

func (r *ProblemDynamoRepository) conditionalUpdate(ctx context.Context, problemID string, in *dynamodb.UpdateItemInput) (entities.Problem, error) {
	in.TableName = aws.String(r.tableName)
	in.Key = map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: problemID},
	}
	in.ExpressionAttributeNames = mergeNames(in.ExpressionAttributeNames, map[string]string{
		"#id":         "id",
		"#updated_at": "updated_at",
	})
	in.ExpressionAttributeValues[":updated_at"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}
	in.ReturnValues = types.ReturnValueAllNew

	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Problem{}, nil
		}
		return entities.Problem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Problem{}, nil
	}
	var it problemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Problem{}, err
	}
	return fromProblemItem(it), nil
}

func toProblemItem(p entities.Problem) problemItem {
	steps := make([]problemStepItem, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, problemStepItem{
			ID:          s.ID,
			StepNumber:  s.StepNumber,
			Instruction: s.Instruction,
			Completed:   s.Completed,
		})
	}
	return problemItem{
		ID:             p.ID,
		OwnerID:        p.OwnerID,
		LaptopBrand:    p.LaptopBrand,
		LaptopModel:    p.LaptopModel,
		Description:    p.Description,
		Status:         string(p.Status),
		Steps:          steps,
		CompletedSteps: p.CompletedSteps,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
	}
}

func fromProblemItem(it problemItem) entities.Problem {
	steps := make([]entities.Step, 0, len(it.Steps))
	for _, s := range it.Steps {
		steps = append(steps, entities.Step{
			ID:          s.ID,
			ProblemID:   it.ID,
			StepNumber:  s.StepNumber,
			Instruction: s.Instruction,
			Completed:   s.Completed,
		})
	}
	return entities.Problem{
		ID:             it.ID,
		OwnerID:        it.OwnerID,
		LaptopBrand:    it.LaptopBrand,
		LaptopModel:    it.LaptopModel,
		Description:    it.Description,
		Status:         entities.ProblemStatus(it.Status),
		Steps:          steps,
		CompletedSteps: it.CompletedSteps,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
